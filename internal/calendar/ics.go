package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pitwall/f1-calendar/internal/race"
)

// Every exported event gets a fixed two hour window. Real session lengths
// vary, but the fixed window keeps both encodings deterministic.
const eventDuration = 2 * time.Hour

// window converts a session into its calendar event bounds.
func window(s race.Session) (start, end time.Time, err error) {
	start, err = s.Start()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.Add(eventDuration), nil
}

func eventSummary(raceName string, s race.Session) string {
	return fmt.Sprintf("F1: %s - %s", raceName, s.Type)
}

func eventDetails(raceName string, s race.Session) string {
	return fmt.Sprintf("Formula 1 %s at %s", s.Type, raceName)
}

// GenerateICS renders one iCalendar document covering every session of
// every race given. Races are expected to already be resolved against a
// selection. An empty input still yields the well-formed VCALENDAR
// wrapper with zero VEVENT blocks. Sessions whose timestamps cannot be
// parsed are skipped rather than producing a malformed partial document.
func GenerateICS(races []race.Race) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//F1 Calendar//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	ics.WriteString("X-WR-CALNAME:Formula 1 2025 Calendar\r\n")
	ics.WriteString("X-WR-TIMEZONE:UTC\r\n")

	for _, r := range races {
		for _, s := range r.Sessions {
			start, end, err := window(s)
			if err != nil {
				continue
			}

			ics.WriteString("BEGIN:VEVENT\r\n")
			ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(start)))
			ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(end)))
			ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(eventSummary(r.Name, s))))
			ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(eventDetails(r.Name, s))))
			ics.WriteString("END:VEVENT\r\n")
		}
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// formatICSTime formats an instant as a compact UTC timestamp,
// ISO-8601 basic format with fractional seconds stripped.
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters per RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
