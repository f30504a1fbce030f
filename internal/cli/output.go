package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pitwall/f1-calendar/internal/display"
	"github.com/pitwall/f1-calendar/internal/race"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// raceView is one race prepared for output: session times already
// rendered in the viewer's zone, ongoing/next markers resolved.
type raceView struct {
	Name     string        `json:"name"`
	Ongoing  bool          `json:"ongoing,omitempty"`
	Next     bool          `json:"next,omitempty"`
	Sessions []sessionView `json:"sessions"`
}

type sessionView struct {
	Type string `json:"type"`
	When string `json:"when"`
}

// buildRaceViews renders the filtered, annotated race list with the given
// preferences. Formatting errors propagate: a wrong timezone must be
// reported, not papered over.
func buildRaceViews(races []race.Race, current, next int, prefs display.Preferences) ([]raceView, error) {
	views := make([]raceView, 0, len(races))
	for i, r := range races {
		view := raceView{
			Name:    r.Name,
			Ongoing: i == current,
			Next:    i == next,
		}
		for _, s := range r.Sessions {
			when, err := prefs.FormatSessionWith(s)
			if err != nil {
				return nil, fmt.Errorf("formatting %s of %q: %w", s.Type, r.Name, err)
			}
			view.Sessions = append(view.Sessions, sessionView{Type: string(s.Type), When: when})
		}
		views = append(views, view)
	}
	return views, nil
}

func writeRaceViews(w io.Writer, views []raceView, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, views)
	}

	if len(views) == 0 {
		fmt.Fprintln(w, "No races to show.")
		return nil
	}

	for _, v := range views {
		marker := ""
		if v.Ongoing {
			marker = "  [Ongoing]"
		} else if v.Next {
			marker = "  [Next]"
		}
		fmt.Fprintf(w, "%s%s\n", v.Name, marker)
		for _, s := range v.Sessions {
			fmt.Fprintf(w, "  %-16s %s\n", s.Type, s.When)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
