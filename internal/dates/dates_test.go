package dates

import (
	"testing"
	"time"
)

func testCalendar(t *testing.T, today string) *Calendar {
	t.Helper()

	loc, err := time.LoadLocation("America/Denver")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	noon, err := time.ParseInLocation("2006-01-02 15:04", today+" 12:00", loc)
	if err != nil {
		t.Fatalf("parse today %q: %v", today, err)
	}

	return NewCalendarAt(loc, func() time.Time { return noon })
}

func TestToday(t *testing.T) {
	c := testCalendar(t, "2026-02-02")
	if got := c.Today(); got != "2026-02-02" {
		t.Errorf("Today() = %q, want 2026-02-02", got)
	}
}

func TestParseWeekdayName(t *testing.T) {
	tests := []struct {
		name  string
		index int
		ok    bool
	}{
		{"Monday", 1, true},
		{"monday", 1, true},
		{"  SUNDAY  ", 0, true},
		{"Saturday", 6, true},
		{"Mon", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		index, ok := ParseWeekdayName(tt.name)
		if index != tt.index || ok != tt.ok {
			t.Errorf("ParseWeekdayName(%q) = %d, %v, want %d, %v", tt.name, index, ok, tt.index, tt.ok)
		}
	}
}

func TestWeekdayIndex(t *testing.T) {
	c := testCalendar(t, "2026-02-02")

	tests := []struct {
		key  string
		want int
	}{
		{"2026-02-02", 1}, // Monday
		{"2026-02-06", 5}, // Friday
		{"2026-02-08", 0}, // Sunday
	}

	for _, tt := range tests {
		if got := c.WeekdayIndex(tt.key); got != tt.want {
			t.Errorf("WeekdayIndex(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestAddDays(t *testing.T) {
	c := testCalendar(t, "2026-02-02")

	tests := []struct {
		key  string
		n    int
		want string
	}{
		{"2026-02-02", 7, "2026-02-09"},
		{"2026-02-28", 1, "2026-03-01"},
		{"2026-03-01", -1, "2026-02-28"},
		// spring-forward happens on 2026-03-08 in Denver
		{"2026-03-07", 1, "2026-03-08"},
		{"2026-03-07", 7, "2026-03-14"},
		{"2026-12-31", 1, "2027-01-01"},
	}

	for _, tt := range tests {
		if got := c.AddDays(tt.key, tt.n); got != tt.want {
			t.Errorf("AddDays(%q, %d) = %q, want %q", tt.key, tt.n, got, tt.want)
		}
	}
}

func TestAddDaysBadKeyFallsBackToToday(t *testing.T) {
	c := testCalendar(t, "2026-02-02")

	if got := c.AddDays("not-a-date", 0); got != "2026-02-02" {
		t.Errorf("AddDays(bad key, 0) = %q, want today", got)
	}
}

func TestDaysBetween(t *testing.T) {
	c := testCalendar(t, "2026-02-02")

	tests := []struct {
		from, to string
		want     int
	}{
		{"2026-02-02", "2026-02-09", 7},
		{"2026-02-09", "2026-02-02", -7},
		{"2026-02-02", "2026-02-02", 0},
		// noon to noon across spring-forward is 167h; still 7 days
		{"2026-03-02", "2026-03-09", 7},
	}

	for _, tt := range tests {
		if got := c.DaysBetween(tt.from, tt.to); got != tt.want {
			t.Errorf("DaysBetween(%q, %q) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestNextWeekday(t *testing.T) {
	// 2026-02-02 is a Monday
	c := testCalendar(t, "2026-02-02")

	tests := []struct {
		name         string
		includeToday bool
		want         string
	}{
		{"Monday", true, "2026-02-02"},
		{"Monday", false, "2026-02-09"},
		{"Friday", true, "2026-02-06"},
		{"Friday", false, "2026-02-06"},
		{"Sunday", true, "2026-02-08"},
		{"Blursday", true, "2026-02-02"},
	}

	for _, tt := range tests {
		if got := c.NextWeekday(tt.name, tt.includeToday); got != tt.want {
			t.Errorf("NextWeekday(%q, %v) = %q, want %q", tt.name, tt.includeToday, got, tt.want)
		}
	}
}

func TestSnapToWeekday(t *testing.T) {
	c := testCalendar(t, "2026-02-02")

	tests := []struct {
		key    string
		target int
		want   string
	}{
		{"2026-02-02", 1, "2026-02-02"}, // already a Monday
		{"2026-02-03", 1, "2026-02-09"}, // never moves backward
		{"2026-02-02", 5, "2026-02-06"},
		{"2026-02-02", 8, "2026-02-02"}, // index wraps
	}

	for _, tt := range tests {
		if got := c.SnapToWeekday(tt.key, tt.target); got != tt.want {
			t.Errorf("SnapToWeekday(%q, %d) = %q, want %q", tt.key, tt.target, got, tt.want)
		}
	}
}

func TestValidKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"2026-02-02", true},
		{"2026-2-2", false},
		{"2026-02-30", false},
		{"02/02/2026", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidKey(tt.key); got != tt.want {
			t.Errorf("ValidKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestLexicographicOrderMatchesChronology(t *testing.T) {
	c := testCalendar(t, "2026-02-02")

	prev := "2026-02-02"
	for i := 0; i < 400; i++ {
		next := c.AddDays(prev, 1)
		if next <= prev {
			t.Fatalf("key order broke at %q -> %q", prev, next)
		}
		prev = next
	}
}
