package calendar

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/pitwall/f1-calendar/internal/race"
)

// RenderURL is Google Calendar's public event-creation endpoint. Its URL
// contract takes exactly one event per request, so a bulk export becomes
// one link per session instead of a combined submission.
const RenderURL = "https://calendar.google.com/calendar/render"

// renderQuery carries the query parameters of one event-creation link.
type renderQuery struct {
	Action  string `url:"action"`
	Text    string `url:"text"`
	Details string `url:"details"`
	Dates   string `url:"dates"`
}

// SessionLink builds the deep link creating a calendar event for a single
// session of the named race.
func SessionLink(raceName string, s race.Session) (string, error) {
	start, end, err := window(s)
	if err != nil {
		return "", fmt.Errorf("building link for %q %s: %w", raceName, s.Type, err)
	}

	q := renderQuery{
		Action:  "TEMPLATE",
		Text:    eventSummary(raceName, s),
		Details: eventDetails(raceName, s),
		Dates:   formatICSTime(start) + "/" + formatICSTime(end),
	}

	values, err := query.Values(q)
	if err != nil {
		return "", fmt.Errorf("encoding link parameters: %w", err)
	}

	return RenderURL + "?" + encodeQuery(values), nil
}

// EventLinks builds one deep link per (race, session) pair, in list order.
// The caller opens each link independently. Sessions with unparseable
// timestamps are skipped, mirroring GenerateICS, so the two encodings
// always cover the same events.
func EventLinks(races []race.Race) []string {
	links := make([]string, 0)
	for _, r := range races {
		for _, s := range r.Sessions {
			link, err := SessionLink(r.Name, s)
			if err != nil {
				continue
			}
			links = append(links, link)
		}
	}
	return links
}

// encodeQuery percent-encodes values the way browsers do: spaces become
// %20, not the form-encoding plus sign.
func encodeQuery(values url.Values) string {
	return strings.ReplaceAll(values.Encode(), "+", "%20")
}
