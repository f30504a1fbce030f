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
	flagLinksSessions string
	flagLinksRace     string
	flagLinksSession  string
)

func newLinksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Print Google Calendar event-creation links",
		Long: `Print one Google Calendar deep link per selected session. The target
endpoint creates a single event per request, so a browser would open one
tab per link; here the ordered URL list is yours to handle.

With --race and --session, print the link for that one session only.`,
		RunE: runLinks,
	}

	cmd.Flags().StringVar(&flagLinksSessions, "sessions", "all",
		"Comma-separated session types (e.g. qualifying,grand_prix) or 'all'")
	cmd.Flags().StringVar(&flagLinksRace, "race", "", "Race name for a single-session link")
	cmd.Flags().StringVar(&flagLinksSession, "session", "", "Session type for a single-session link (requires --race)")

	return cmd
}

func runLinks(cmd *cobra.Command, args []string) error {
	prefs, err := preferences(cmd)
	if err != nil {
		return err
	}
	format, err := outputFormat()
	if err != nil {
		return err
	}

	races, err := race.LoadSchedule()
	if err != nil {
		return fmt.Errorf("loading schedule: %w", err)
	}

	var links []string
	if flagLinksRace != "" || flagLinksSession != "" {
		if flagLinksRace == "" || flagLinksSession == "" {
			return fmt.Errorf("--race and --session must be used together")
		}
		r, s, err := findSession(races, flagLinksRace, flagLinksSession)
		if err != nil {
			return err
		}
		link, err := calendar.SessionLink(r.Name, s)
		if err != nil {
			return err
		}
		links = []string{link}
	} else {
		sel, err := calendar.ParseSelection(flagLinksSessions)
		if err != nil {
			return err
		}
		visible := race.Visible(races, prefs.PastRaces == display.PastHidden, time.Now().UTC())
		links = calendar.EventLinks(calendar.Resolve(visible, sel))
	}

	if format == FormatJSON {
		return writeJSON(os.Stdout, links)
	}
	for _, link := range links {
		fmt.Println(link)
	}
	return nil
}
