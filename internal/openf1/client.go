// Package openf1 is the read-only gateway to the OpenF1 HTTP API. Remote
// shapes are normalized here at the boundary (session_key aliases to
// SessionID, date_start to Date) so consumers never see raw field drift.
//
// Transport and decode failures never escape the gateway: they are logged
// and turned into empty collections, so downstream rendering degrades to
// "no data" instead of crashing.
package openf1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/pitwall/f1-calendar/internal/logger"
)

// DefaultBaseURL is the fixed remote endpoint.
const DefaultBaseURL = "https://api.openf1.org/v1"

// Session is one timed session as reported by the remote source.
type Session struct {
	MeetingKey       int    `json:"meeting_key"`
	SessionKey       int    `json:"session_key"`
	SessionName      string `json:"session_name"`
	SessionType      string `json:"session_type"`
	MeetingName      string `json:"meeting_name"`
	CircuitKey       int    `json:"circuit_key"`
	CircuitShortName string `json:"circuit_short_name"`
	CountryName      string `json:"country_name"`
	DateStart        string `json:"date_start"`
	DateEnd          string `json:"date_end"`
	GmtOffset        string `json:"gmt_offset"`

	// Aliases filled in by the gateway.
	SessionID int    `json:"session_id"`
	Date      string `json:"date"`
}

// Driver is one entrant of a session.
type Driver struct {
	DriverNumber  json.Number `json:"driver_number"`
	BroadcastName string      `json:"broadcast_name"`
	FullName      string      `json:"full_name"`
	NameAcronym   string      `json:"name_acronym"`
	TeamName      string      `json:"team_name"`
	TeamColor     string      `json:"team_colour"`
	FirstName     string      `json:"first_name"`
	LastName      string      `json:"last_name"`
	CountryCode   string      `json:"country_code"`
	SessionKey    int         `json:"session_key"`
}

// DriverStanding is one row of the driver championship.
type DriverStanding struct {
	Position      int         `json:"position"`
	Points        float64     `json:"points"`
	DriverNumber  json.Number `json:"driver_number"`
	BroadcastName string      `json:"broadcast_name"`
	TeamName      string      `json:"team_name"`
	SessionKey    int         `json:"session_key"`
}

// ConstructorStanding is one row of the constructor championship.
type ConstructorStanding struct {
	Position   int     `json:"position"`
	Points     float64 `json:"points"`
	TeamName   string  `json:"team_name"`
	SessionKey int     `json:"session_key"`
}

// Source is the read contract consumers depend on. The live Client
// implements it; tests substitute fixed data.
type Source interface {
	Sessions(ctx context.Context) []Session
	Drivers(ctx context.Context, sessionKey int) []Driver
	DriverStandings(ctx context.Context, sessionKey int) []DriverStanding
	ConstructorStandings(ctx context.Context, sessionKey int) []ConstructorStanding
}

// Client fetches from the OpenF1 API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timings    *logger.Timings
}

var _ Source = (*Client)(nil)

// NewClient creates a gateway client. An empty baseURL selects the fixed
// public endpoint. There is no retry policy; the transport carries a
// bounded timeout only.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		timings: logger.NewTimings(),
	}
}

// Timings exposes per-endpoint fetch durations.
func (c *Client) Timings() *logger.Timings {
	return c.timings
}

// get performs one GET and decodes the JSON array response into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	c.timings.Record("api."+strings.TrimPrefix(path, "/"), time.Since(started))
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

// Sessions fetches all sessions. Failures degrade to an empty list.
func (c *Client) Sessions(ctx context.Context) []Session {
	var sessions []Session
	if err := c.get(ctx, "/sessions", nil, &sessions); err != nil {
		logger.Error("fetching sessions", logger.Fields{"endpoint": "/sessions"}, err)
		return []Session{}
	}
	for i := range sessions {
		sessions[i].SessionID = sessions[i].SessionKey
		sessions[i].Date = sessions[i].DateStart
	}
	return sessions
}

// Drivers fetches drivers, optionally filtered by session. A sessionKey of
// zero fetches all. Failures degrade to an empty list.
func (c *Client) Drivers(ctx context.Context, sessionKey int) []Driver {
	params := url.Values{}
	if sessionKey != 0 {
		params.Set("session_key", fmt.Sprint(sessionKey))
	}

	var drivers []Driver
	if err := c.get(ctx, "/drivers", params, &drivers); err != nil {
		logger.Error("fetching drivers", logger.Fields{"endpoint": "/drivers", "session_key": sessionKey}, err)
		return []Driver{}
	}
	return drivers
}

// DriverStandings fetches the driver championship for a session. Failures
// degrade to an empty list.
func (c *Client) DriverStandings(ctx context.Context, sessionKey int) []DriverStanding {
	params := url.Values{}
	params.Set("session_key", fmt.Sprint(sessionKey))

	var standings []DriverStanding
	if err := c.get(ctx, "/driver_standings", params, &standings); err != nil {
		logger.Error("fetching driver standings", logger.Fields{"endpoint": "/driver_standings", "session_key": sessionKey}, err)
		return []DriverStanding{}
	}
	return standings
}

// ConstructorStandings fetches the constructor championship for a session.
// Failures degrade to an empty list.
func (c *Client) ConstructorStandings(ctx context.Context, sessionKey int) []ConstructorStanding {
	params := url.Values{}
	params.Set("session_key", fmt.Sprint(sessionKey))

	var standings []ConstructorStanding
	if err := c.get(ctx, "/constructor_standings", params, &standings); err != nil {
		logger.Error("fetching constructor standings", logger.Fields{"endpoint": "/constructor_standings", "session_key": sessionKey}, err)
		return []ConstructorStanding{}
	}
	return standings
}

// LatestSession fetches all sessions and reports the one with the most
// recent start. The second return is false when no sessions are available.
func (c *Client) LatestSession(ctx context.Context) (Session, bool) {
	return latestOf(c.Sessions(ctx))
}

// latestOf sorts sessions by start instant descending and takes the first.
func latestOf(sessions []Session) (Session, bool) {
	if len(sessions) == 0 {
		return Session{}, false
	}

	sorted := make([]Session, len(sessions))
	copy(sorted, sessions)
	sort.Slice(sorted, func(i, j int) bool {
		return sessionStart(sorted[i]).After(sessionStart(sorted[j]))
	})
	return sorted[0], true
}

func sessionStart(s Session) time.Time {
	t, err := time.Parse(time.RFC3339, s.DateStart)
	if err != nil {
		return time.Time{}
	}
	return t
}
