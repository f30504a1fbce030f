// Package race holds the domain model for the Formula 1 season: race
// weekends, their on-track sessions, and the list-derivation logic the
// calendar views are built on (past-race filtering, ongoing/next markers).
//
// All session timestamps in the schedule are stored as UTC wall-clock
// values with no embedded offset. Conversion into a viewer's timezone is
// display-only and lives in the display package.
package race

import (
	"fmt"
	"time"
)

// SessionType identifies one discrete on-track activity within a race
// weekend. The string values double as the schedule's wire names and the
// user-facing labels, matching the schedule resource.
type SessionType string

const (
	FreePractice1 SessionType = "Free Practice 1"
	FreePractice2 SessionType = "Free Practice 2"
	FreePractice3 SessionType = "Free Practice 3"
	Qualifying    SessionType = "Qualifying"
	Sprint        SessionType = "Sprint"
	GrandPrix     SessionType = "Grand Prix"
)

// SessionTypes returns all session types in conventional weekend order.
// The order is load-bearing for export filenames.
func SessionTypes() []SessionType {
	return []SessionType{
		FreePractice1,
		FreePractice2,
		FreePractice3,
		Qualifying,
		Sprint,
		GrandPrix,
	}
}

// Session is one on-track activity. Date ("2006-01-02") and Time ("15:04")
// together denote an instant in UTC.
type Session struct {
	Type SessionType `json:"type"`
	Date string      `json:"date"`
	Time string      `json:"time"`
}

// Start returns the session's start instant in UTC.
func (s Session) Start() (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04", s.Date+" "+s.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing session start %q %q: %w", s.Date, s.Time, err)
	}
	return t, nil
}

// Race is a race weekend: an ordered group of sessions sharing one event
// name. Sessions are chronological; index 0 opens the weekend and the last
// index is the Grand Prix. Sprint weekends carry fewer sessions, so no code
// may assume a fixed count.
type Race struct {
	Name     string    `json:"name"`
	Sessions []Session `json:"sessions"`
}

// WeekendStart returns the start instant of the first session.
func (r Race) WeekendStart() (time.Time, error) {
	if len(r.Sessions) == 0 {
		return time.Time{}, fmt.Errorf("race %q has no sessions", r.Name)
	}
	return r.Sessions[0].Start()
}

// WeekendEnd returns the start instant of the final session.
func (r Race) WeekendEnd() (time.Time, error) {
	if len(r.Sessions) == 0 {
		return time.Time{}, fmt.Errorf("race %q has no sessions", r.Name)
	}
	return r.Sessions[len(r.Sessions)-1].Start()
}
