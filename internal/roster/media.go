package roster

import (
	"fmt"
	"net/url"
	"strings"
)

const mediaBase = "https://media.formula1.com"

// DriverImageURL builds the formula1.com headshot URL for a driver name.
// The site keys images by a code of the first three letters of the first
// and last names plus "01". Antonelli predates that scheme and keeps his
// legacy code.
func DriverImageURL(name string) string {
	if name == "Andrea Kimi Antonelli" {
		return fmt.Sprintf(
			"%s/d_driver_fallback_image.png/content/dam/fom-website/drivers/A/ANDANT01_Andrea%%20Kimi_Antonelli/andant01.png",
			mediaBase,
		)
	}

	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	first := parts[0]
	last := parts[len(parts)-1]
	code := strings.ToUpper(prefix(first, 3)+prefix(last, 3)) + "01"
	fullName := strings.Join(parts, "_")

	return fmt.Sprintf(
		"%s/d_driver_fallback_image.png/content/dam/fom-website/drivers/%s/%s_%s/%s.png",
		mediaBase, code[:1], code, fullName, strings.ToLower(code),
	)
}

// TeamCarURL builds the team car render URL.
func TeamCarURL(team string) string {
	return fmt.Sprintf(
		"%s/d_team_car_fallback_image.png/content/dam/fom-website/teams/2025/%s.png",
		mediaBase, teamSlug(team),
	)
}

// TeamLogoURL builds the team logo URL.
func TeamLogoURL(team string) string {
	return fmt.Sprintf(
		"%s/content/dam/fom-website/teams/2025/%s-logo.png",
		mediaBase, teamSlug(team),
	)
}

// FlagURL builds the nationality flag URL.
func FlagURL(country string) string {
	return fmt.Sprintf(
		"%s/d_default_fallback_image.png/content/dam/fom-website/flags/%s.jpg",
		mediaBase, url.PathEscape(country),
	)
}

func teamSlug(team string) string {
	return strings.ReplaceAll(strings.ToLower(team), " ", "-")
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
