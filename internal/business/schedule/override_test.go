package schedule

import (
	"testing"

	"github.com/localscene/events-backend/internal/model"
)

func TestBuildOverrideLookup(t *testing.T) {
	rows := []*model.OccurrenceOverride{
		{ID: 1, OverrideCreate: model.OverrideCreate{EventID: "1", DateKey: "2026-02-02", Status: model.OverrideStatusNormal}},
		{ID: 2, OverrideCreate: model.OverrideCreate{EventID: "1", DateKey: "2026-02-09", Status: model.OverrideStatusNormal}},
		{ID: 3, OverrideCreate: model.OverrideCreate{EventID: "2", DateKey: "2026-02-02", Status: model.OverrideStatusCancelled}},
	}

	lookup := BuildOverrideLookup(rows)

	if len(lookup) != 3 {
		t.Fatalf("got %d entries, want 3", len(lookup))
	}
	if got := lookup.Get("1", "2026-02-09"); got == nil || got.ID != 2 {
		t.Errorf("Get(1, 2026-02-09) = %v, want row 2", got)
	}
	if got := lookup.Get("2", "2026-02-02"); got == nil || got.Status != model.OverrideStatusCancelled {
		t.Errorf("Get(2, 2026-02-02) = %v, want cancelled row", got)
	}
	if got := lookup.Get("3", "2026-02-02"); got != nil {
		t.Errorf("Get on missing key = %v, want nil", got)
	}
}

func TestBuildOverrideLookupLastRowWins(t *testing.T) {
	rows := []*model.OccurrenceOverride{
		{ID: 1, OverrideCreate: model.OverrideCreate{EventID: "1", DateKey: "2026-02-02", Status: model.OverrideStatusNormal}},
		{ID: 2, OverrideCreate: model.OverrideCreate{EventID: "1", DateKey: "2026-02-02", Status: model.OverrideStatusCancelled}},
	}

	lookup := BuildOverrideLookup(rows)

	if len(lookup) != 1 {
		t.Fatalf("got %d entries, want 1", len(lookup))
	}
	if got := lookup.Get("1", "2026-02-02"); got == nil || got.ID != 2 {
		t.Errorf("Get(1, 2026-02-02) = %v, want the later row", got)
	}
}
