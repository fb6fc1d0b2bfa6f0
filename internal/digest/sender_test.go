package digest

import (
	"testing"

	"github.com/localscene/events-backend/internal/model"
)

func TestCountForVenues(t *testing.T) {
	mk := func(venueID int64, cancelled bool) *model.EventOccurrenceEntry {
		return &model.EventOccurrenceEntry{
			Event:       &model.EventDefinition{ID: "1", EventCreate: model.EventCreate{VenueID: venueID}},
			IsCancelled: cancelled,
		}
	}

	groups := map[string][]*model.EventOccurrenceEntry{
		"2026-02-02": {mk(1, false), mk(2, false)},
		"2026-02-04": {mk(1, true), mk(3, false)},
		"2026-02-06": {mk(1, false)},
	}

	subscribed := map[int64]struct{}{1: {}, 3: {}}

	// venue 1 twice (the cancelled one is skipped) plus venue 3 once
	if got := countForVenues(groups, subscribed); got != 3 {
		t.Errorf("countForVenues() = %d, want 3", got)
	}
}
