package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/localscene/events-backend/internal/dates"
	"github.com/localscene/events-backend/internal/model"
)

// ExpandDates generates the candidate occurrence date keys for one event
// definition within [windowStart, windowEnd], inclusive on both ends,
// ascending and deduplicated. The second return reports whether the
// strategy was deterministic (explicit dates or a declared rule) as opposed
// to a weekday guessed from the anchor date.
//
// Strategy precedence: custom_dates, then recurrence_rule / day_of_week,
// then the single event_date.
func ExpandDates(cal *dates.Calendar, ev *model.EventDefinition, windowStart, windowEnd string) ([]string, bool) {
	if windowEnd < windowStart {
		return nil, true
	}

	if len(ev.CustomDates) != 0 {
		return customDates(ev.CustomDates, windowStart, windowEnd), true
	}

	if !isRecurring(ev) {
		if dates.ValidKey(ev.EventDate) && ev.EventDate >= windowStart && ev.EventDate <= windowEnd {
			return []string{ev.EventDate}, true
		}
		return nil, true
	}

	if ev.RecurrenceRule != "" {
		if ds, ok := expandRule(cal, ev, windowStart, windowEnd); ok {
			return ds, true
		}
		// unparseable rule: fall through to the weekday series
	}

	if _, ok := dates.ParseWeekdayName(ev.DayOfWeek); ok {
		anchor := weeklyAnchor(cal, ev, windowStart)
		return weeklyDates(cal, anchor, windowStart, windowEnd, ev.MaxOccurrences), true
	}

	// Recurring flag with neither rule nor weekday: guess a weekly series
	// off the anchor date's weekday.
	if dates.ValidKey(ev.EventDate) {
		return weeklyDates(cal, ev.EventDate, windowStart, windowEnd, ev.MaxOccurrences), false
	}

	return nil, false
}

func isRecurring(ev *model.EventDefinition) bool {
	return ev.IsRecurring || ev.DayOfWeek != "" || ev.RecurrenceRule != ""
}

func customDates(keys []string, windowStart, windowEnd string) []string {
	seen := make(map[string]struct{}, len(keys))
	res := make([]string, 0, len(keys))

	for _, k := range keys {
		if !dates.ValidKey(k) || k < windowStart || k > windowEnd {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, k)
	}

	sort.Strings(res)
	return res
}

// weeklyAnchor resolves the true series anchor: the event's own date
// snapped forward onto the declared weekday, or the first matching date in
// the window when the definition carries no date.
func weeklyAnchor(cal *dates.Calendar, ev *model.EventDefinition, windowStart string) string {
	target, _ := dates.ParseWeekdayName(ev.DayOfWeek)
	if dates.ValidKey(ev.EventDate) {
		return cal.SnapToWeekday(ev.EventDate, target)
	}

	return cal.SnapToWeekday(windowStart, target)
}

// weeklyDates steps forward by seven days from the anchor. The
// max-occurrence cap counts from the anchor, not from the window start, so
// a capped series that began before the window contributes only its
// remaining dates.
func weeklyDates(cal *dates.Calendar, anchor, windowStart, windowEnd string, max int) []string {
	if anchor > windowEnd {
		return nil
	}

	emitted := 0
	start := anchor
	if anchor < windowStart {
		skip := (cal.DaysBetween(anchor, windowStart) + 6) / 7
		emitted = skip
		start = cal.AddDays(anchor, skip*7)
	}

	var res []string
	for d := start; d <= windowEnd; d = cal.AddDays(d, 7) {
		if max > 0 && emitted >= max {
			break
		}
		emitted++
		res = append(res, d)
	}

	return res
}

func expandRule(cal *dates.Calendar, ev *model.EventDefinition, windowStart, windowEnd string) ([]string, bool) {
	anchorKey := windowStart
	if dates.ValidKey(ev.EventDate) {
		anchorKey = ev.EventDate
	} else if target, ok := dates.ParseWeekdayName(ev.DayOfWeek); ok {
		anchorKey = cal.SnapToWeekday(windowStart, target)
	}

	opt, ok := ruleOption(ev.RecurrenceRule, cal.Noon(anchorKey))
	if !ok {
		return nil, false
	}
	if ev.MaxOccurrences > 0 {
		opt.Count = ev.MaxOccurrences
	}

	rule, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, false
	}

	// Bounds padded by an hour so a DST-shifted noon still lands inside.
	times := rule.Between(cal.Noon(windowStart).Add(-time.Hour), cal.Noon(windowEnd).Add(time.Hour), true)

	res := make([]string, 0, len(times))
	for _, t := range times {
		k := t.Format(dates.KeyFormat)
		if len(res) != 0 && res[len(res)-1] == k {
			continue
		}
		res = append(res, k)
	}

	return res, true
}

// ruleOption maps a recurrence descriptor to rrule options. Descriptors are
// either one of the marker words hosts pick in the event form or a raw
// RRULE string.
func ruleOption(descriptor string, anchor time.Time) (*rrule.ROption, bool) {
	switch strings.ToLower(strings.TrimSpace(descriptor)) {
	case "weekly":
		return &rrule.ROption{Freq: rrule.WEEKLY, Interval: 1, Dtstart: anchor}, true
	case "biweekly", "fortnightly":
		return &rrule.ROption{Freq: rrule.WEEKLY, Interval: 2, Dtstart: anchor}, true
	case "monthly":
		return &rrule.ROption{Freq: rrule.MONTHLY, Interval: 1, Dtstart: anchor}, true
	}

	raw := strings.TrimPrefix(strings.TrimSpace(descriptor), "RRULE:")
	opt, err := rrule.StrToROption(raw)
	if err != nil {
		return nil, false
	}
	if opt.Dtstart.IsZero() {
		opt.Dtstart = anchor
	}

	return opt, true
}
