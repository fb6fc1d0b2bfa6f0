package schedule

import (
	"github.com/localscene/events-backend/internal/model"
)

type OverrideKey struct {
	EventID string
	DateKey string
}

// OverrideLookup indexes override rows by (event id, original date key).
type OverrideLookup map[OverrideKey]*model.OccurrenceOverride

// BuildOverrideLookup is a pure reshaping of the fetched rows. The
// persistence layer enforces uniqueness per (event_id, date_key); should
// duplicates reach us anyway the last row wins rather than failing a
// render.
func BuildOverrideLookup(rows []*model.OccurrenceOverride) OverrideLookup {
	lookup := make(OverrideLookup, len(rows))
	for _, row := range rows {
		lookup[OverrideKey{EventID: row.EventID, DateKey: row.DateKey}] = row
	}

	return lookup
}

func (l OverrideLookup) Get(eventID, dateKey string) *model.OccurrenceOverride {
	return l[OverrideKey{EventID: eventID, DateKey: dateKey}]
}
