package openf1

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Dashboard bundles everything one screen load needs.
type Dashboard struct {
	Sessions             []Session
	Drivers              []Driver
	Latest               *Session
	DriverStandings      []DriverStanding
	ConstructorStandings []ConstructorStanding
}

// LoadDashboard fetches sessions and drivers concurrently; the standings
// fetches depend on knowing the latest session, so they are sequenced
// strictly after the sessions fetch resolves. When no latest session can
// be determined the standings fetches are skipped entirely.
func LoadDashboard(ctx context.Context, src Source) *Dashboard {
	d := &Dashboard{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d.Sessions = src.Sessions(gctx)
		return nil
	})
	g.Go(func() error {
		d.Drivers = src.Drivers(gctx, 0)
		return nil
	})
	// Source methods absorb their own failures, so the group never errors.
	_ = g.Wait()

	latest, ok := latestOf(d.Sessions)
	if !ok {
		return d
	}
	d.Latest = &latest

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		d.DriverStandings = src.DriverStandings(gctx, latest.SessionKey)
		return nil
	})
	g.Go(func() error {
		d.ConstructorStandings = src.ConstructorStandings(gctx, latest.SessionKey)
		return nil
	})
	_ = g.Wait()

	return d
}
