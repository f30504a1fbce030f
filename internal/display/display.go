// Package display converts stored UTC session instants into viewer-facing
// strings and carries the per-run display preferences (timezone, hour
// convention, past-race visibility).
package display

import (
	"errors"
	"fmt"
	"time"

	"github.com/pitwall/f1-calendar/internal/race"
)

// Formatting failures are surfaced to the caller instead of silently
// defaulting; a wrong fallback would show wrong real-world start times.
var (
	ErrInvalidTimestamp = errors.New("invalid session timestamp")
	ErrUnknownTimezone  = errors.New("unknown timezone")
)

// TimeFormat selects the hour convention.
type TimeFormat string

const (
	Format12 TimeFormat = "12"
	Format24 TimeFormat = "24"
)

// Visibility controls whether past races are shown.
type Visibility string

const (
	PastVisible Visibility = "visible"
	PastHidden  Visibility = "hidden"
)

// Preferences is the per-run display state. It has no persistence; the
// zero-ish defaults come from NewPreferences and explicit user flags.
type Preferences struct {
	Timezone   string
	TimeFormat TimeFormat
	PastRaces  Visibility
}

// NewPreferences builds preferences around an explicitly supplied timezone.
// Callers wanting the runtime default pass DetectTimezone(); tests inject
// fixed zones.
func NewPreferences(timezone string) Preferences {
	return Preferences{
		Timezone:   timezone,
		TimeFormat: Format24,
		PastRaces:  PastVisible,
	}
}

// DetectTimezone reads the runtime's local timezone name once.
func DetectTimezone() string {
	return time.Now().Location().String()
}

// FormatSession renders a session's UTC start instant in the given IANA
// zone: abbreviated weekday, abbreviated month, day of month and
// hour:minute in the requested hour convention, e.g. "Sat, May 10, 14:00"
// or "Sat, May 10, 02:00 PM".
func FormatSession(s race.Session, timezone string, format TimeFormat) (string, error) {
	start, err := s.Start()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTimestamp, err)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownTimezone, timezone)
	}

	local := start.In(loc)
	if format == Format12 {
		return local.Format("Mon, Jan 2, 03:04 PM"), nil
	}
	return local.Format("Mon, Jan 2, 15:04"), nil
}

// FormatSessionWith renders a session using the preferences' zone and hour
// convention.
func (p Preferences) FormatSessionWith(s race.Session) (string, error) {
	return FormatSession(s, p.Timezone, p.TimeFormat)
}
