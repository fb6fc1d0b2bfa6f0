package schedule

import (
	"testing"

	"github.com/localscene/events-backend/internal/model"
)

func TestGroupOccurrences(t *testing.T) {
	cal := testCalendar(t, "2026-02-02")

	weekly := event("1", model.EventCreate{Title: "Open mic", DayOfWeek: "Monday", EventDate: "2026-02-02"})
	single := event("2", model.EventCreate{Title: "Release show", EventDate: "2026-02-09"})

	lookup := BuildOverrideLookup([]*model.OccurrenceOverride{
		{ID: 1, OverrideCreate: model.OverrideCreate{EventID: "1", DateKey: "2026-02-09", Status: model.OverrideStatusCancelled}},
	})

	groups := GroupOccurrences(cal, []*model.EventDefinition{weekly, single}, lookup, "2026-02-02", "2026-02-15")

	if got := len(groups["2026-02-02"]); got != 1 {
		t.Errorf("2026-02-02 has %d entries, want 1", got)
	}

	feb9 := groups["2026-02-09"]
	if len(feb9) != 2 {
		t.Fatalf("2026-02-09 has %d entries, want 2", len(feb9))
	}

	var weeklyEntry, singleEntry *model.EventOccurrenceEntry
	for _, e := range feb9 {
		switch e.Event.ID {
		case "1":
			weeklyEntry = e
		case "2":
			singleEntry = e
		}
	}

	if weeklyEntry == nil || !weeklyEntry.IsCancelled {
		t.Error("cancelled occurrence should stay grouped with the flag set")
	}
	if weeklyEntry != nil && weeklyEntry.Override == nil {
		t.Error("the override row should ride along on the entry")
	}
	if singleEntry == nil || singleEntry.IsCancelled {
		t.Error("the other event on the same day must be untouched")
	}
}

func TestGroupOccurrencesInjectsRelocatingOverrides(t *testing.T) {
	cal := testCalendar(t, "2026-02-02")

	// the expander only ever yields 2026-02-09 for this event
	single := event("1", model.EventCreate{Title: "Release show", EventDate: "2026-02-09"})

	lookup := BuildOverrideLookup([]*model.OccurrenceOverride{
		// off-series exception with a relocation: must surface
		{ID: 1, OverrideCreate: model.OverrideCreate{
			EventID: "1", DateKey: "2026-02-04", Status: model.OverrideStatusNormal,
			Patch: model.OverridePatch{EventDate: "2026-02-20"},
		}},
		// off-series without a relocation: dropped
		{ID: 2, OverrideCreate: model.OverrideCreate{
			EventID: "1", DateKey: "2026-02-05", Status: model.OverrideStatusNormal,
			Patch: model.OverridePatch{StartTime: "21:00"},
		}},
		// out of window: dropped
		{ID: 3, OverrideCreate: model.OverrideCreate{
			EventID: "1", DateKey: "2026-06-01", Status: model.OverrideStatusNormal,
			Patch: model.OverridePatch{EventDate: "2026-06-02"},
		}},
	})

	groups := GroupOccurrences(cal, []*model.EventDefinition{single}, lookup, "2026-02-02", "2026-02-28")

	injected := groups["2026-02-04"]
	if len(injected) != 1 {
		t.Fatalf("2026-02-04 has %d entries, want 1 injected", len(injected))
	}
	if injected[0].IsConfident {
		t.Error("an injected off-series entry must not be confident")
	}
	if injected[0].Override == nil || injected[0].Override.ID != 1 {
		t.Error("injected entry should carry its override row")
	}

	if _, ok := groups["2026-02-05"]; ok {
		t.Error("non-relocating off-series override must not be injected")
	}
	if _, ok := groups["2026-06-01"]; ok {
		t.Error("out-of-window override must not be injected")
	}

	// the generated date is grouped once, not duplicated by injection
	if got := len(groups["2026-02-09"]); got != 1 {
		t.Errorf("2026-02-09 has %d entries, want 1", got)
	}
}

func TestSortedDays(t *testing.T) {
	groups := map[string][]*model.EventOccurrenceEntry{
		"2026-02-20": nil,
		"2026-02-02": nil,
		"2026-02-09": nil,
	}

	got := SortedDays(groups)
	want := []string{"2026-02-02", "2026-02-09", "2026-02-20"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortedDays() = %v, want %v", got, want)
		}
	}
}
