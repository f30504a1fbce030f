package race

import "time"

// Visible derives the race list to display. A race is past when its final
// session's start instant is strictly earlier than now; past races are
// dropped only when hidePast is set. Original order is preserved. Races
// whose end instant cannot be determined are kept.
func Visible(races []Race, hidePast bool, now time.Time) []Race {
	if !hidePast {
		return races
	}

	visible := make([]Race, 0, len(races))
	for _, r := range races {
		end, err := r.WeekendEnd()
		if err != nil {
			visible = append(visible, r)
			continue
		}
		if end.Before(now) {
			continue
		}
		visible = append(visible, r)
	}
	return visible
}

// Annotate computes the "ongoing" and "next" markers over an already
// filtered race list. It returns indexes into races, -1 meaning no match.
//
// Current is the first race whose first session start is <= now and whose
// last session start is >= now. Next is the first race after the current
// index whose first session start is strictly in the future. When nothing
// is current the search for next starts at -1+1 = 0, i.e. the whole list.
// That tie-break is deliberate and must not be "fixed": at most one of the
// two markers is active at any instant.
func Annotate(races []Race, now time.Time) (current, next int) {
	current = -1
	for i, r := range races {
		start, err := r.WeekendStart()
		if err != nil {
			continue
		}
		end, err := r.WeekendEnd()
		if err != nil {
			continue
		}
		if !now.Before(start) && !now.After(end) {
			current = i
			break
		}
	}

	next = -1
	for i, r := range races {
		if i <= current {
			continue
		}
		start, err := r.WeekendStart()
		if err != nil {
			continue
		}
		if start.After(now) {
			next = i
			break
		}
	}

	return current, next
}
