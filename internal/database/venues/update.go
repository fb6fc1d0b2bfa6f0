package venues

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/localscene/events-backend/internal/database"
	"github.com/localscene/events-backend/internal/model"
)

func (*Repository) UpdateVenue(ctx context.Context, q database.Queryable, id int64, venue *model.VenueCreate) error {
	qb := database.PSQL.
		Update(database.VenuesTable).
		SetMap(map[string]interface{}{
			"name":        venue.Name,
			"address":     venue.Address,
			"city":        venue.City,
			"website":     venue.Website,
			"description": venue.Description,
			"lat":         venue.Lat,
			"lng":         venue.Lng,
		}).
		Where(sq.Eq{"id": id})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) SetUserVenueSettings(ctx context.Context, q database.Queryable, settings *model.VenueSettings) error {
	qb := database.PSQL.
		Insert(database.UserVenueTable).
		Columns("user_id", "venue_id", "color", "notify").
		Values(settings.UserID, settings.VenueID, settings.Color.ToHTML(), settings.Notify).
		Suffix(`on conflict (user_id, venue_id) do update
			set color = excluded.color, notify = excluded.notify`)

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
