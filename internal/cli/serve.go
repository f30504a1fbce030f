package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pitwall/f1-calendar/internal/logger"
	"github.com/pitwall/f1-calendar/internal/openf1"
	"github.com/pitwall/f1-calendar/internal/race"
	"github.com/pitwall/f1-calendar/internal/server"
)

var flagServeAddr string

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calendar over HTTP (JSON API plus .ics download)",
		RunE:  runServe,
	}

	cmd.Flags().StringVar(&flagServeAddr, "addr", "127.0.0.1:8088", "Listen address")
	cmd.Flags().StringVar(&flagBaseURL, "base-url", openf1.DefaultBaseURL, "OpenF1 API base URL")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	prefs, err := preferences(cmd)
	if err != nil {
		return err
	}

	races, err := race.LoadSchedule()
	if err != nil {
		return fmt.Errorf("loading schedule: %w", err)
	}

	srv := server.New(races, openf1.NewClient(flagBaseURL), prefs)

	logger.Info("serving", logger.Fields{"addr": flagServeAddr})
	if err := http.ListenAndServe(flagServeAddr, srv.Handler()); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
