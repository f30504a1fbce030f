package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pitwall/f1-calendar/internal/roster"
)

func newTeamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "Show the 2025 constructor lineup",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}

			teams := roster.Teams()
			if format == FormatJSON {
				return writeJSON(os.Stdout, teams)
			}

			for _, team := range teams {
				fmt.Printf("%s (%s)\n", team.Name, team.Car)
				for _, d := range team.Drivers {
					fmt.Printf("  #%-3d %s (%s)\n", d.Number, d.Name, d.Nationality)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func newDriversCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drivers",
		Short: "Show the 2025 driver roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}

			drivers := roster.Drivers()
			if format == FormatJSON {
				return writeJSON(os.Stdout, drivers)
			}

			for _, d := range drivers {
				fmt.Printf("#%-3d %-24s %s\n", d.Number, d.Name, d.Nationality)
			}
			return nil
		},
	}
}
