package api

import (
	"testing"

	"github.com/localscene/events-backend/internal/model"
)

func TestMapToEntryRespOverrideTimesWin(t *testing.T) {
	entry := &model.EventOccurrenceEntry{
		Event: &model.EventDefinition{ID: "1", EventCreate: model.EventCreate{
			Title:     "Open mic",
			StartTime: "20:00",
			EndTime:   "23:00",
		}},
		DateKey:     "2026-02-02",
		IsConfident: true,
		Override: &model.OccurrenceOverride{OverrideCreate: model.OverrideCreate{
			EventID: "1",
			DateKey: "2026-02-02",
			Patch:   model.OverridePatch{StartTime: "21:00"},
		}},
	}

	resp, err := mapToEntryResp(entry)
	if err != nil {
		t.Fatalf("mapToEntryResp: %v", err)
	}

	if resp.StartTime != "21:00" {
		t.Errorf("StartTime = %q, want the override's 21:00", resp.StartTime)
	}
	if resp.EndTime != "23:00" {
		t.Errorf("EndTime = %q, want the definition's 23:00", resp.EndTime)
	}
}

func TestMapToTimelineRespOrdersDays(t *testing.T) {
	mk := func(day string) *model.EventOccurrenceEntry {
		return &model.EventOccurrenceEntry{
			Event:   &model.EventDefinition{ID: "1", EventCreate: model.EventCreate{Title: "Show"}},
			DateKey: day,
		}
	}

	groups := map[string][]*model.EventOccurrenceEntry{
		"2026-02-20": {mk("2026-02-20")},
		"2026-02-02": {mk("2026-02-02")},
		"2026-02-09": {mk("2026-02-09")},
	}

	resp, err := mapToTimelineResp(groups)
	if err != nil {
		t.Fatalf("mapToTimelineResp: %v", err)
	}

	want := []string{"2026-02-02", "2026-02-09", "2026-02-20"}
	if len(resp) != len(want) {
		t.Fatalf("got %d days, want %d", len(resp), len(want))
	}
	for i, day := range want {
		if resp[i].Date != day {
			t.Errorf("day %d = %q, want %q", i, resp[i].Date, day)
		}
	}
}
