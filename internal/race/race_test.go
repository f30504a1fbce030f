package race

import (
	"testing"
	"time"
)

func TestSessionStart(t *testing.T) {
	s := Session{Type: Qualifying, Date: "2025-05-10", Time: "14:00"}

	start, err := s.Start()
	if err != nil {
		t.Fatalf("Start() returned error: %v", err)
	}

	want := time.Date(2025, 5, 10, 14, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("Start() = %v, want %v", start, want)
	}
	if start.Location() != time.UTC {
		t.Errorf("Start() location = %v, want UTC", start.Location())
	}
}

func TestSessionStart_Invalid(t *testing.T) {
	tests := []struct {
		name string
		sess Session
	}{
		{name: "bad date", sess: Session{Type: GrandPrix, Date: "not-a-date", Time: "14:00"}},
		{name: "bad time", sess: Session{Type: GrandPrix, Date: "2025-05-10", Time: "25:99"}},
		{name: "empty", sess: Session{Type: GrandPrix}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.sess.Start(); err == nil {
				t.Errorf("Start() = nil error for %+v, want error", tt.sess)
			}
		})
	}
}

func TestWeekendBounds(t *testing.T) {
	r := Race{
		Name: "Test GP",
		Sessions: []Session{
			{Type: FreePractice1, Date: "2025-05-09", Time: "11:30"},
			{Type: Qualifying, Date: "2025-05-10", Time: "14:00"},
			{Type: GrandPrix, Date: "2025-05-11", Time: "13:00"},
		},
	}

	start, err := r.WeekendStart()
	if err != nil {
		t.Fatalf("WeekendStart() error: %v", err)
	}
	if want := time.Date(2025, 5, 9, 11, 30, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("WeekendStart() = %v, want %v", start, want)
	}

	end, err := r.WeekendEnd()
	if err != nil {
		t.Fatalf("WeekendEnd() error: %v", err)
	}
	if want := time.Date(2025, 5, 11, 13, 0, 0, 0, time.UTC); !end.Equal(want) {
		t.Errorf("WeekendEnd() = %v, want %v", end, want)
	}
}

func TestWeekendBounds_NoSessions(t *testing.T) {
	r := Race{Name: "Empty GP"}

	if _, err := r.WeekendStart(); err == nil {
		t.Error("WeekendStart() should fail for race with no sessions")
	}
	if _, err := r.WeekendEnd(); err == nil {
		t.Error("WeekendEnd() should fail for race with no sessions")
	}
}

func TestLoadSchedule(t *testing.T) {
	races, err := LoadSchedule()
	if err != nil {
		t.Fatalf("LoadSchedule() error: %v", err)
	}
	if len(races) == 0 {
		t.Fatal("LoadSchedule() returned no races")
	}

	// Every race must have chronological sessions with parseable starts,
	// ending on the Grand Prix.
	for _, r := range races {
		if len(r.Sessions) == 0 {
			t.Errorf("race %q has no sessions", r.Name)
			continue
		}

		last := r.Sessions[len(r.Sessions)-1]
		if last.Type != GrandPrix {
			t.Errorf("race %q ends with %q, want %q", r.Name, last.Type, GrandPrix)
		}

		var prev time.Time
		for _, s := range r.Sessions {
			start, err := s.Start()
			if err != nil {
				t.Errorf("race %q session %q: %v", r.Name, s.Type, err)
				continue
			}
			if !prev.IsZero() && !start.After(prev) {
				t.Errorf("race %q session %q out of order", r.Name, s.Type)
			}
			prev = start
		}
	}
}
