// Package cli wires the f1-calendar command tree. Every command works on
// the embedded season schedule; only the standings and serve commands
// reach the remote OpenF1 gateway.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pitwall/f1-calendar/internal/config"
	"github.com/pitwall/f1-calendar/internal/display"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig     string
	flagTimezone   string
	flagTimeFormat string
	flagHidePast   bool
	flagFormat     string
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "f1-calendar",
		Short: "Formula 1 race times, calendar exports and standings",
		Long: `Browse the Formula 1 race calendar in your timezone, export race
weekends as an iCalendar file or Google Calendar links, and look up
live standings.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config with default preferences")
	cmd.PersistentFlags().StringVar(&flagTimezone, "timezone", "", "IANA timezone for session times (default: detected local zone)")
	cmd.PersistentFlags().StringVar(&flagTimeFormat, "time-format", "", "Hour convention: 12 or 24")
	cmd.PersistentFlags().BoolVar(&flagHidePast, "hide-past", false, "Hide races whose final session has started")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newLinksCmd())
	cmd.AddCommand(newTeamsCmd())
	cmd.AddCommand(newDriversCmd())
	cmd.AddCommand(newStandingsCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// preferences resolves display preferences: config file first, flags on
// top, detected local zone as the final timezone fallback.
func preferences(cmd *cobra.Command) (display.Preferences, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return display.Preferences{}, fmt.Errorf("loading config: %w", err)
	}

	timezone := cfg.Timezone
	if cmd.Flags().Changed("timezone") {
		timezone = flagTimezone
	}
	if timezone == "" {
		timezone = display.DetectTimezone()
	}

	prefs := display.NewPreferences(timezone)
	prefs.TimeFormat = display.TimeFormat(cfg.TimeFormat)
	if cmd.Flags().Changed("time-format") {
		switch flagTimeFormat {
		case "12", "24":
			prefs.TimeFormat = display.TimeFormat(flagTimeFormat)
		default:
			return display.Preferences{}, fmt.Errorf("invalid time format: %s (must be '12' or '24')", flagTimeFormat)
		}
	}

	if cfg.PastRaces == string(display.PastHidden) {
		prefs.PastRaces = display.PastHidden
	}
	if cmd.Flags().Changed("hide-past") {
		if flagHidePast {
			prefs.PastRaces = display.PastHidden
		} else {
			prefs.PastRaces = display.PastVisible
		}
	}

	return prefs, nil
}

func outputFormat() (OutputFormat, error) {
	format := OutputFormat(flagFormat)
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	return format, nil
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
