package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pitwall/f1-calendar/internal/display"
	"github.com/pitwall/f1-calendar/internal/race"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the race calendar with session times in your timezone",
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
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

	now := time.Now().UTC()
	visible := race.Visible(races, prefs.PastRaces == display.PastHidden, now)
	current, next := race.Annotate(visible, now)

	views, err := buildRaceViews(visible, current, next, prefs)
	if err != nil {
		return err
	}
	return writeRaceViews(os.Stdout, views, format)
}
