// Package dates implements calendar arithmetic on civil date keys
// ("YYYY-MM-DD" strings). Keys are never converted to absolute instants:
// every operation resolves against one configured timezone at a fixed noon
// marker, so day-of-week math stays correct across DST transitions.
package dates

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const KeyFormat = "2006-01-02"

type Calendar struct {
	loc *time.Location
	now func() time.Time
}

func NewCalendar(tz string) (*Calendar, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", tz, err)
	}

	return &Calendar{loc: loc, now: time.Now}, nil
}

// NewCalendarAt builds a calendar with an explicit clock, used by tests and
// anywhere "today" must be pinned.
func NewCalendarAt(loc *time.Location, now func() time.Time) *Calendar {
	return &Calendar{loc: loc, now: now}
}

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// ParseWeekdayName resolves a weekday name to its index (0 = Sunday).
func ParseWeekdayName(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range weekdayNames {
		if strings.ToLower(n) == name {
			return i, true
		}
	}

	return 0, false
}

func WeekdayName(index int) string {
	return weekdayNames[((index%7)+7)%7]
}

// Today returns the current date key in the calendar's timezone.
func (c *Calendar) Today() string {
	return c.now().In(c.loc).Format(KeyFormat)
}

// atNoon anchors a key at noon in the calendar's timezone. Parsing at
// midnight risks resolving to the previous local day around DST shifts;
// noon never does. Unparseable keys fall back to today rather than failing,
// since these values feed date pickers and listings.
func (c *Calendar) atNoon(key string) time.Time {
	t, err := time.ParseInLocation(KeyFormat, key, time.UTC)
	if err != nil {
		t, _ = time.ParseInLocation(KeyFormat, c.Today(), time.UTC)
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, c.loc)
}

// WeekdayIndex returns 0..6 (0 = Sunday) for the given date key.
func (c *Calendar) WeekdayIndex(key string) int {
	return int(c.atNoon(key).Weekday())
}

func (c *Calendar) WeekdayNameOf(key string) string {
	return weekdayNames[c.WeekdayIndex(key)]
}

// AddDays steps a key forward (or back) by whole calendar days.
func (c *Calendar) AddDays(key string, n int) string {
	return c.atNoon(key).AddDate(0, 0, n).Format(KeyFormat)
}

// NextWeekday returns the earliest date >= today falling on the named
// weekday. With includeToday false a matching today yields today+7.
// Unknown names return today.
func (c *Calendar) NextWeekday(name string, includeToday bool) string {
	target, ok := ParseWeekdayName(name)
	if !ok {
		return c.Today()
	}

	today := c.Today()
	diff := (target - c.WeekdayIndex(today) + 7) % 7
	if diff == 0 && !includeToday {
		diff = 7
	}

	return c.AddDays(today, diff)
}

// SnapToWeekday returns key unchanged if it already falls on the target
// weekday, otherwise the next matching date. It never moves backward.
func (c *Calendar) SnapToWeekday(key string, target int) string {
	target = ((target % 7) + 7) % 7
	diff := (target - c.WeekdayIndex(key) + 7) % 7
	if diff == 0 {
		return key
	}

	return c.AddDays(key, diff)
}

// Noon exposes the noon anchor instant for a key, for callers that need to
// hand a concrete time to rule engines.
func (c *Calendar) Noon(key string) time.Time {
	return c.atNoon(key)
}

// DaysBetween returns the number of calendar days from one key to another,
// negative when to precedes from. Rounded because noon-to-noon spans differ
// by an hour across DST.
func (c *Calendar) DaysBetween(from, to string) int {
	return int(math.Round(c.atNoon(to).Sub(c.atNoon(from)).Hours() / 24))
}

// ValidKey reports whether key is a well-formed date key.
func ValidKey(key string) bool {
	_, err := time.Parse(KeyFormat, key)
	return err == nil
}
