package race

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

// The 2025 schedule ships inside the binary. It is loaded once at startup
// and never mutated afterwards.
//
//go:embed schedule.json
var scheduleJSON []byte

type scheduleDoc struct {
	Races []Race `json:"races"`
}

// LoadSchedule parses the embedded season schedule.
func LoadSchedule() ([]Race, error) {
	var doc scheduleDoc
	if err := json.Unmarshal(scheduleJSON, &doc); err != nil {
		return nil, fmt.Errorf("parsing embedded schedule: %w", err)
	}
	return doc.Races, nil
}
