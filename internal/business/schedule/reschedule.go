package schedule

import (
	"github.com/localscene/events-backend/internal/dates"
	"github.com/localscene/events-backend/internal/model"
)

// ApplyReschedules resolves relocation overrides across the whole grouped
// timeline and returns a new map; the input is not mutated. An entry whose
// override patch names a different event_date moves to that day's group,
// flagged rescheduled and keeping its original date for provenance. Days
// emptied by relocation are dropped from the result entirely, so callers
// must treat a missing key the same as an empty list.
//
// This is a global second pass rather than per-day bookkeeping: the target
// day may not exist as a key yet, and a relocation can arrive from another
// in-window day.
func ApplyReschedules(groups map[string][]*model.EventOccurrenceEntry) map[string][]*model.EventOccurrenceEntry {
	res := make(map[string][]*model.EventOccurrenceEntry, len(groups))

	for _, day := range SortedDays(groups) {
		for _, entry := range groups[day] {
			target, ok := relocationTarget(entry)
			if !ok {
				res[day] = append(res[day], entry)
				continue
			}

			moved := *entry
			moved.DateKey = target
			moved.IsRescheduled = true
			moved.OriginalDateKey = day
			moved.DisplayDate = target
			res[target] = append(res[target], &moved)
		}
	}

	return res
}

// relocationTarget reports where an entry moves to, if anywhere. Absent
// overrides, patches without an event_date, same-date patches, and
// malformed date values all mean "stay put"; nothing here is worth failing
// a page over.
func relocationTarget(entry *model.EventOccurrenceEntry) (string, bool) {
	if entry.Override == nil {
		return "", false
	}

	target := entry.Override.Patch.EventDate
	if target == "" || target == entry.DateKey || !dates.ValidKey(target) {
		return "", false
	}

	return target, true
}
