package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pitwall/f1-calendar/internal/openf1"
)

var flagBaseURL string

func newStandingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Show driver and constructor standings from the latest session",
		Long: `Fetch the latest session from the OpenF1 API and show both
championship tables. Remote failures degrade to empty tables.`,
		RunE: runStandings,
	}

	cmd.Flags().StringVar(&flagBaseURL, "base-url", openf1.DefaultBaseURL, "OpenF1 API base URL")

	return cmd
}

// standingsResult is the JSON shape of the standings command.
type standingsResult struct {
	Session      *openf1.Session              `json:"session,omitempty"`
	Drivers      []openf1.DriverStanding      `json:"driver_standings"`
	Constructors []openf1.ConstructorStanding `json:"constructor_standings"`
}

func runStandings(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	client := openf1.NewClient(flagBaseURL)
	dash := openf1.LoadDashboard(cmd.Context(), client)

	result := standingsResult{
		Session:      dash.Latest,
		Drivers:      dash.DriverStandings,
		Constructors: dash.ConstructorStandings,
	}

	if format == FormatJSON {
		return writeJSON(os.Stdout, result)
	}

	if result.Session == nil {
		fmt.Println("No session data available.")
		return nil
	}

	fmt.Printf("Standings after %s (%s)\n\n", result.Session.MeetingName, result.Session.SessionName)

	fmt.Println("Driver Standings:")
	if len(result.Drivers) == 0 {
		fmt.Println("  no data")
	}
	for _, row := range result.Drivers {
		fmt.Printf("  %2d. %-20s %-24s %6.1f pts\n", row.Position, row.BroadcastName, row.TeamName, row.Points)
	}

	fmt.Println("\nConstructor Standings:")
	if len(result.Constructors) == 0 {
		fmt.Println("  no data")
	}
	for _, row := range result.Constructors {
		fmt.Printf("  %2d. %-24s %6.1f pts\n", row.Position, row.TeamName, row.Points)
	}

	return nil
}
