package overrides

import (
	"context"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/localscene/events-backend/internal/database"
	"github.com/localscene/events-backend/internal/model"
)

func (*Repository) DeleteOverride(ctx context.Context, q database.Queryable, eventID string, dateKey string) error {
	id, err := strconv.ParseInt(eventID, 10, 64)
	if err != nil {
		return fmt.Errorf("parse event id %q: %w", eventID, err)
	}

	qb := database.PSQL.
		Delete(database.EventOverridesTable).
		Where(sq.Eq{"event_id": id, "date_key": dateKey})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}
