// Package server exposes the calendar over HTTP: a JSON API mirroring the
// CLI views plus the ICS artifact as a text/calendar download. The static
// schedule and the remote gateway are both injected, so handlers stay
// testable without network access.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pitwall/f1-calendar/internal/calendar"
	"github.com/pitwall/f1-calendar/internal/display"
	"github.com/pitwall/f1-calendar/internal/logger"
	"github.com/pitwall/f1-calendar/internal/openf1"
	"github.com/pitwall/f1-calendar/internal/race"
	"github.com/pitwall/f1-calendar/internal/roster"
)

// Server holds the immutable schedule, the data source and the default
// display preferences for a running instance.
type Server struct {
	races  []race.Race
	source openf1.Source
	prefs  display.Preferences

	// now is swapped out in tests for deterministic filtering.
	now func() time.Time
}

// New creates a server over the given schedule and data source.
func New(races []race.Race, source openf1.Source, prefs display.Preferences) *Server {
	return &Server{
		races:  races,
		source: source,
		prefs:  prefs,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/races", s.handleRaces)
	mux.HandleFunc("GET /api/links", s.handleLinks)
	mux.HandleFunc("GET /api/teams", s.handleTeams)
	mux.HandleFunc("GET /api/drivers", s.handleDrivers)
	mux.HandleFunc("GET /api/standings", s.handleStandings)
	mux.HandleFunc("GET /calendar.ics", s.handleCalendar)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

// visible applies the past-race query parameter on top of the server's
// default visibility preference.
func (s *Server) visible(r *http.Request) []race.Race {
	hidePast := s.prefs.PastRaces == display.PastHidden
	switch r.URL.Query().Get("past") {
	case "hidden":
		hidePast = true
	case "visible":
		hidePast = false
	}
	return race.Visible(s.races, hidePast, s.now())
}

func (s *Server) handleRaces(w http.ResponseWriter, r *http.Request) {
	prefs := s.prefs
	if zone := r.URL.Query().Get("tz"); zone != "" {
		prefs.Timezone = zone
	}
	if tf := r.URL.Query().Get("time_format"); tf == "12" || tf == "24" {
		prefs.TimeFormat = display.TimeFormat(tf)
	}

	visible := s.visible(r)
	current, next := race.Annotate(visible, s.now())

	type sessionPayload struct {
		Type string `json:"type"`
		Date string `json:"date"`
		Time string `json:"time"`
		When string `json:"when"`
	}
	type racePayload struct {
		Name     string           `json:"name"`
		Ongoing  bool             `json:"ongoing,omitempty"`
		Next     bool             `json:"next,omitempty"`
		Sessions []sessionPayload `json:"sessions"`
	}

	payload := make([]racePayload, 0, len(visible))
	for i, rc := range visible {
		entry := racePayload{Name: rc.Name, Ongoing: i == current, Next: i == next}
		for _, sess := range rc.Sessions {
			when, err := prefs.FormatSessionWith(sess)
			if err != nil {
				// Bad tz query parameter: tell the caller rather than
				// render times in a fallback zone.
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			entry.Sessions = append(entry.Sessions, sessionPayload{
				Type: string(sess.Type),
				Date: sess.Date,
				Time: sess.Time,
				When: when,
			})
		}
		payload = append(payload, entry)
	}

	writeJSON(w, payload)
}

func (s *Server) handleLinks(w http.ResponseWriter, r *http.Request) {
	sel, err := calendar.ParseSelection(r.URL.Query().Get("sessions"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	links := calendar.EventLinks(calendar.Resolve(s.visible(r), sel))
	writeJSON(w, links)
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	sel, err := calendar.ParseSelection(r.URL.Query().Get("sessions"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc := calendar.GenerateICS(calendar.Resolve(s.visible(r), sel))

	w.Header().Set("Content-Type", "text/calendar;charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", calendar.Filename(sel)))
	if _, err := w.Write([]byte(doc)); err != nil {
		logger.Error("writing calendar response", nil, err)
	}
}

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, roster.Teams())
}

func (s *Server) handleDrivers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, roster.Drivers())
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	dash := openf1.LoadDashboard(r.Context(), s.source)

	writeJSON(w, map[string]interface{}{
		"session":               dash.Latest,
		"driver_standings":      dash.DriverStandings,
		"constructor_standings": dash.ConstructorStandings,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encoding response", nil, err)
	}
}
