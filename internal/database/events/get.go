package events

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"

	"github.com/localscene/events-backend/internal/database"
	"github.com/localscene/events-backend/internal/model"
)

func (*Repository) GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.EventDefinition, error) {
	qb := baseQuery.
		Where(sq.Eq{"e.id": id})

	dto := &eventDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToEvent(dto), nil
}

func (*Repository) GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.EventDefinition, error) {
	qb := baseQuery.OrderBy("e.id")

	if len(filter.Statuses) != 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		qb = qb.Where(sq.Eq{"e.status": statuses})
	}

	if len(filter.VenueIDs) != 0 {
		qb = qb.Where(sq.Eq{"e.venue_id": filter.VenueIDs})
	}

	if filter.HostID != 0 {
		qb = qb.Where(sq.Eq{"e.host_id": filter.HostID})
	}

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.EventDefinition, len(dtos))
	for i, d := range dtos {
		res[i] = mapToEvent(d)
	}

	return res, nil
}
