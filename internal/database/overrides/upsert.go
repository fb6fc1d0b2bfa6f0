package overrides

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/localscene/events-backend/internal/database"
	"github.com/localscene/events-backend/internal/model"
)

// UpsertOverride writes the exception row for (event, date). The unique
// index on (event_id, date_key) is what guarantees at most one row per
// occurrence; edits replace in place.
func (*Repository) UpsertOverride(ctx context.Context, q database.Queryable, override *model.OverrideCreate) (int64, error) {
	eventID, err := strconv.ParseInt(override.EventID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse event id %q: %w", override.EventID, err)
	}

	patch, err := json.Marshal(override.Patch)
	if err != nil {
		return 0, fmt.Errorf("marshal override patch: %w", err)
	}

	qb := database.PSQL.
		Insert(database.EventOverridesTable).
		Columns(
			"event_id",
			"date_key",
			"status",
			"override_patch",
			"override_start_time",
		).
		Values(
			eventID,
			override.DateKey,
			override.Status,
			patch,
			override.Patch.StartTime,
		).
		Suffix(`on conflict (event_id, date_key) do update
			set status = excluded.status,
			    override_patch = excluded.override_patch,
			    override_start_time = excluded.override_start_time
			returning id`)

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
