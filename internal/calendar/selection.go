// Package calendar turns a chosen set of race sessions into calendar
// artifacts: an iCalendar document for download and Google Calendar
// deep links, both derived from the same resolved (race, session) list so
// the two encodings can never disagree about which events are included.
package calendar

import (
	"fmt"
	"strings"

	"github.com/pitwall/f1-calendar/internal/race"
)

// Selection records which session types the user wants exported.
type Selection map[race.SessionType]bool

// NewSelection returns a selection with every session type included.
func NewSelection() Selection {
	sel := make(Selection, len(race.SessionTypes()))
	for _, t := range race.SessionTypes() {
		sel[t] = true
	}
	return sel
}

// Types returns the selected session types in weekend order.
func (sel Selection) Types() []race.SessionType {
	var types []race.SessionType
	for _, t := range race.SessionTypes() {
		if sel[t] {
			types = append(types, t)
		}
	}
	return types
}

// Resolve applies the selection to the race list. Sessions of unselected
// types are dropped; a race left with zero sessions is dropped entirely
// rather than exported as an empty entry.
func Resolve(races []race.Race, sel Selection) []race.Race {
	resolved := make([]race.Race, 0, len(races))
	for _, r := range races {
		var kept []race.Session
		for _, s := range r.Sessions {
			if sel[s.Type] {
				kept = append(kept, s)
			}
		}
		if len(kept) == 0 {
			continue
		}
		resolved = append(resolved, race.Race{Name: r.Name, Sessions: kept})
	}
	return resolved
}

// Filename derives the download name for an ICS export from the selected
// session types: lower-cased, spaces replaced with underscores, joined
// with underscores.
func Filename(sel Selection) string {
	parts := make([]string, 0, len(sel))
	for _, t := range sel.Types() {
		parts = append(parts, Slug(t))
	}
	return "f1-calendar-2025-" + strings.Join(parts, "_") + ".ics"
}

// Slug is the flag- and URL-friendly spelling of a session type, e.g.
// "free_practice_1" or "grand_prix".
func Slug(t race.SessionType) string {
	return strings.ReplaceAll(strings.ToLower(string(t)), " ", "_")
}

// ParseSelection turns a comma-separated list of session slugs into a
// selection. Empty input or "all" selects every session type.
func ParseSelection(arg string) (Selection, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" || strings.EqualFold(arg, "all") {
		return NewSelection(), nil
	}

	bySlug := make(map[string]race.SessionType)
	for _, t := range race.SessionTypes() {
		bySlug[Slug(t)] = t
	}

	sel := make(Selection)
	for _, part := range strings.Split(arg, ",") {
		slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(part)), " ", "_")
		if slug == "" {
			continue
		}
		t, ok := bySlug[slug]
		if !ok {
			valid := make([]string, 0, len(race.SessionTypes()))
			for _, st := range race.SessionTypes() {
				valid = append(valid, Slug(st))
			}
			return nil, fmt.Errorf("unknown session type %q (valid: %s)", part, strings.Join(valid, ", "))
		}
		sel[t] = true
	}
	return sel, nil
}
