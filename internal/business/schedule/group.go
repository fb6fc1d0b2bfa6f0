package schedule

import (
	"sort"

	"github.com/localscene/events-backend/internal/dates"
	"github.com/localscene/events-backend/internal/model"
)

// GroupOccurrences expands every event over the window and buckets the
// results per calendar day. Cancelled occurrences stay in their group with
// the flag set; surfaces decide whether to hide or strike them. Order
// within a day is insertion order, stable across recomputation but not
// sorted by any field.
//
// An override on a date the expander never generated still produces an
// entry when its patch relocates it: hosts do enter exceptions off the
// series rule, and dropping those silently loses the relocation.
func GroupOccurrences(cal *dates.Calendar, events []*model.EventDefinition, lookup OverrideLookup, windowStart, windowEnd string) map[string][]*model.EventOccurrenceEntry {
	groups := make(map[string][]*model.EventOccurrenceEntry)

	for _, ev := range events {
		candidates, confident := ExpandDates(cal, ev, windowStart, windowEnd)

		seen := make(map[string]struct{}, len(candidates))
		for _, d := range candidates {
			seen[d] = struct{}{}

			ov := lookup.Get(ev.ID, d)
			groups[d] = append(groups[d], &model.EventOccurrenceEntry{
				Event:       ev,
				DateKey:     d,
				IsConfident: confident,
				Override:    ov,
				IsCancelled: ov != nil && ov.Status == model.OverrideStatusCancelled,
			})
		}

		for _, ov := range injectedOverrides(lookup, ev.ID, windowStart, windowEnd) {
			if _, ok := seen[ov.DateKey]; ok {
				continue
			}

			groups[ov.DateKey] = append(groups[ov.DateKey], &model.EventOccurrenceEntry{
				Event:       ev,
				DateKey:     ov.DateKey,
				IsConfident: false,
				Override:    ov,
				IsCancelled: ov.Status == model.OverrideStatusCancelled,
			})
		}
	}

	return groups
}

// injectedOverrides returns the event's in-window overrides that carry a
// real relocation, sorted by date key so grouping stays deterministic.
func injectedOverrides(lookup OverrideLookup, eventID, windowStart, windowEnd string) []*model.OccurrenceOverride {
	var res []*model.OccurrenceOverride
	for key, ov := range lookup {
		if key.EventID != eventID || key.DateKey < windowStart || key.DateKey > windowEnd {
			continue
		}
		if !dates.ValidKey(ov.Patch.EventDate) || ov.Patch.EventDate == ov.DateKey {
			continue
		}
		res = append(res, ov)
	}

	sort.Slice(res, func(i, j int) bool { return res[i].DateKey < res[j].DateKey })
	return res
}

// SortedDays returns the group keys in ascending order.
func SortedDays(groups map[string][]*model.EventOccurrenceEntry) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}
