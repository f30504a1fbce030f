package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pitwall/f1-calendar/internal/calendar"
	"github.com/pitwall/f1-calendar/internal/display"
	"github.com/pitwall/f1-calendar/internal/race"
)

var (
	flagExportSessions string
	flagExportOut      string
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the selected sessions as an iCalendar (.ics) file",
		Long: `Export the visible races as an iCalendar document consumable by any
calendar application. Each selected session becomes one two-hour event.`,
		RunE: runExport,
	}

	cmd.Flags().StringVar(&flagExportSessions, "sessions", "all",
		"Comma-separated session types (e.g. qualifying,grand_prix) or 'all'")
	cmd.Flags().StringVar(&flagExportOut, "out", "",
		"Output path ('-' for stdout; default: derived from selected sessions)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	prefs, err := preferences(cmd)
	if err != nil {
		return err
	}
	sel, err := calendar.ParseSelection(flagExportSessions)
	if err != nil {
		return err
	}

	races, err := race.LoadSchedule()
	if err != nil {
		return fmt.Errorf("loading schedule: %w", err)
	}

	visible := race.Visible(races, prefs.PastRaces == display.PastHidden, time.Now().UTC())
	resolved := calendar.Resolve(visible, sel)
	doc := calendar.GenerateICS(resolved)

	out := flagExportOut
	if out == "-" {
		fmt.Print(doc)
		return nil
	}
	if out == "" {
		out = calendar.Filename(sel)
	}

	if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing calendar file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Wrote %d events to %s\n", countEvents(resolved), out)
	return nil
}

func countEvents(races []race.Race) int {
	n := 0
	for _, r := range races {
		n += len(r.Sessions)
	}
	return n
}
