package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pitwall/f1-calendar/internal/display"
	"github.com/pitwall/f1-calendar/internal/openf1"
	"github.com/pitwall/f1-calendar/internal/race"
)

// stubSource serves fixed gateway data without any network.
type stubSource struct {
	sessions []openf1.Session
	drivers  []openf1.Driver
}

func (s *stubSource) Sessions(ctx context.Context) []openf1.Session { return s.sessions }
func (s *stubSource) Drivers(ctx context.Context, sessionKey int) []openf1.Driver {
	return s.drivers
}
func (s *stubSource) DriverStandings(ctx context.Context, sessionKey int) []openf1.DriverStanding {
	return []openf1.DriverStanding{{Position: 1, Points: 25, BroadcastName: "M VERSTAPPEN", TeamName: "Red Bull Racing", SessionKey: sessionKey}}
}
func (s *stubSource) ConstructorStandings(ctx context.Context, sessionKey int) []openf1.ConstructorStanding {
	return []openf1.ConstructorStanding{{Position: 1, Points: 40, TeamName: "Red Bull Racing", SessionKey: sessionKey}}
}

func testServer(t *testing.T) *Server {
	t.Helper()
	races := []race.Race{
		{
			Name: "First GP",
			Sessions: []race.Session{
				{Type: race.Qualifying, Date: "2025-05-03", Time: "14:00"},
				{Type: race.GrandPrix, Date: "2025-05-04", Time: "13:00"},
			},
		},
		{
			Name: "Second GP",
			Sessions: []race.Session{
				{Type: race.Qualifying, Date: "2025-05-17", Time: "14:00"},
				{Type: race.GrandPrix, Date: "2025-05-18", Time: "13:00"},
			},
		},
	}
	src := &stubSource{
		sessions: []openf1.Session{{SessionKey: 9158, SessionName: "Race", DateStart: "2025-05-04T13:00:00+00:00"}},
	}
	srv := New(races, src, display.NewPreferences("UTC"))
	// Between the two weekends.
	srv.now = func() time.Time { return time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC) }
	return srv
}

func TestHandleRaces(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/races")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var payload []struct {
		Name     string `json:"name"`
		Next     bool   `json:"next"`
		Sessions []struct {
			Type string `json:"type"`
			When string `json:"when"`
		} `json:"sessions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if len(payload) != 2 {
		t.Fatalf("got %d races, want 2", len(payload))
	}
	if payload[0].Next {
		t.Error("past race marked next")
	}
	if !payload[1].Next {
		t.Error("upcoming race not marked next")
	}
	if payload[1].Sessions[0].When != "Sat, May 17, 14:00" {
		t.Errorf("rendered session time = %q", payload[1].Sessions[0].When)
	}
}

func TestHandleRaces_HidePast(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/races?past=hidden")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var payload []struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	if len(payload) != 1 || payload[0].Name != "Second GP" {
		t.Errorf("payload = %+v, want only Second GP", payload)
	}
}

func TestHandleRaces_BadTimezone(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/races?tz=Nowhere/Nope")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for unknown timezone", resp.StatusCode)
	}
}

func TestHandleCalendar(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/calendar.ics?sessions=grand_prix")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/calendar") {
		t.Errorf("Content-Type = %q, want text/calendar", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "f1-calendar-2025-grand_prix.ics") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	doc := string(body)

	if n := strings.Count(doc, "BEGIN:VEVENT"); n != 2 {
		t.Errorf("VEVENT count = %d, want 2 grands prix", n)
	}
	if strings.Contains(doc, "Qualifying") {
		t.Error("unselected session type exported")
	}
}

func TestHandleCalendar_UnknownSessionType(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/calendar.ics?sessions=warmup")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHandleLinks(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/links?sessions=qualifying&past=hidden")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var links []string
	if err := json.NewDecoder(resp.Body).Decode(&links); err != nil {
		t.Fatal(err)
	}
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1", len(links))
	}
	if !strings.Contains(links[0], "Second%20GP") {
		t.Errorf("link = %q, want Second GP qualifying", links[0])
	}
}

func TestHandleStandings(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/standings")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var payload struct {
		Session *openf1.Session `json:"session"`
		Drivers []struct {
			Position int `json:"position"`
		} `json:"driver_standings"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	if payload.Session == nil || payload.Session.SessionKey != 9158 {
		t.Errorf("session = %+v, want key 9158", payload.Session)
	}
	if len(payload.Drivers) != 1 || payload.Drivers[0].Position != 1 {
		t.Errorf("driver standings = %+v", payload.Drivers)
	}
}

func TestHandleTeams(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/teams")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var teams []struct {
		Name    string `json:"name"`
		CarURL  string `json:"car_url"`
		LogoURL string `json:"logo_url"`
		Drivers []struct {
			Name     string `json:"name"`
			ImageURL string `json:"image_url"`
			FlagURL  string `json:"flag_url"`
		} `json:"drivers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&teams); err != nil {
		t.Fatal(err)
	}
	if len(teams) != 10 {
		t.Fatalf("got %d teams, want 10", len(teams))
	}
	for _, team := range teams {
		if !strings.Contains(team.CarURL, "/teams/2025/") || !strings.Contains(team.LogoURL, "-logo.png") {
			t.Errorf("team %q media URLs = %q %q", team.Name, team.CarURL, team.LogoURL)
		}
		for _, d := range team.Drivers {
			if !strings.Contains(d.ImageURL, "media.formula1.com") {
				t.Errorf("driver %q image URL = %q", d.Name, d.ImageURL)
			}
			if !strings.Contains(d.FlagURL, "/flags/") {
				t.Errorf("driver %q flag URL = %q", d.Name, d.FlagURL)
			}
		}
	}
}

func TestHandleDrivers(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/drivers")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var drivers []struct {
		Name     string `json:"name"`
		Number   int    `json:"number"`
		ImageURL string `json:"image_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&drivers); err != nil {
		t.Fatal(err)
	}
	if len(drivers) != 20 {
		t.Fatalf("got %d drivers, want 20", len(drivers))
	}
	for _, d := range drivers {
		if d.ImageURL == "" {
			t.Errorf("driver %q has no image URL", d.Name)
		}
	}
}
