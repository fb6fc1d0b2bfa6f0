package venues

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"

	"github.com/localscene/events-backend/internal/database"
	"github.com/localscene/events-backend/internal/model"
)

func (*Repository) GetVenueByID(ctx context.Context, q database.Queryable, id int64) (*model.Venue, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	dto := &venueDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToVenue(dto), nil
}

func (*Repository) GetVenues(ctx context.Context, q database.Queryable) ([]*model.Venue, error) {
	qb := baseQuery.OrderBy("name")

	var dtos []*venueDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Venue, len(dtos))
	for i, d := range dtos {
		res[i] = mapToVenue(d)
	}

	return res, nil
}

func (*Repository) GetUserVenueSettings(ctx context.Context, q database.Queryable, filter model.UserVenueSettingsFilter) ([]*model.VenueSettings, error) {
	qb := settingsQuery

	if len(filter.UserIDs) != 0 {
		qb = qb.Where(sq.Eq{"user_id": filter.UserIDs})
	}
	if len(filter.VenueIDs) != 0 {
		qb = qb.Where(sq.Eq{"venue_id": filter.VenueIDs})
	}

	var dtos []*venueSettingsDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.VenueSettings, len(dtos))
	for i, d := range dtos {
		var err error
		res[i], err = mapToVenueSettings(d)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}
