package venues

import (
	"context"
	"fmt"

	"github.com/localscene/events-backend/internal/database"
	"github.com/localscene/events-backend/internal/model"
)

func (*Repository) CreateVenue(ctx context.Context, q database.Queryable, venue *model.VenueCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.VenuesTable).
		Columns("name", "address", "city", "website", "description", "lat", "lng").
		Values(venue.Name, venue.Address, venue.City, venue.Website, venue.Description, venue.Lat, venue.Lng).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
