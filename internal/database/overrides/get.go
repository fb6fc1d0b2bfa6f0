package overrides

import (
	"context"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/localscene/events-backend/internal/database"
	"github.com/localscene/events-backend/internal/model"
)

// GetOverrides fetches override rows for a window. The date predicate is a
// range, never an equality on a single day: a relocation's source date can
// sit anywhere in the window while its target is the day being rendered.
func (*Repository) GetOverrides(ctx context.Context, q database.Queryable, filter model.OverridesFilter) ([]*model.OccurrenceOverride, error) {
	qb := baseQuery.
		Where(sq.GtOrEq{"date_key": filter.FromKey}).
		Where(sq.LtOrEq{"date_key": filter.ToKey}).
		OrderBy("event_id", "date_key")

	if len(filter.EventIDs) != 0 {
		ids := make([]int64, 0, len(filter.EventIDs))
		for _, s := range filter.EventIDs {
			id, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}
		qb = qb.Where(sq.Eq{"event_id": ids})
	}

	var dtos []*overrideDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.OccurrenceOverride, len(dtos))
	for i, d := range dtos {
		var err error
		res[i], err = mapToOverride(d)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}
