package cli

import (
	"fmt"
	"strings"

	"github.com/pitwall/f1-calendar/internal/calendar"
	"github.com/pitwall/f1-calendar/internal/race"
)

// findSession locates a single (race, session) pair by race name and
// session slug, for the single-session link shortcut.
func findSession(races []race.Race, raceName, sessionArg string) (race.Race, race.Session, error) {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(sessionArg)), " ", "_")

	for _, r := range races {
		if !strings.EqualFold(r.Name, strings.TrimSpace(raceName)) {
			continue
		}
		for _, s := range r.Sessions {
			if calendar.Slug(s.Type) == slug {
				return r, s, nil
			}
		}
		return race.Race{}, race.Session{}, fmt.Errorf("race %q has no session %q", r.Name, sessionArg)
	}
	return race.Race{}, race.Session{}, fmt.Errorf("unknown race %q", raceName)
}
