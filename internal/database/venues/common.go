package venues

import (
	"github.com/localscene/events-backend/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"id",
		"name",
		"address",
		"city",
		"website",
		"description",
		"lat",
		"lng",
	).
	From(database.VenuesTable)

var settingsQuery = database.PSQL.
	Select(
		"id",
		"user_id",
		"venue_id",
		"color",
		"notify",
	).
	From(database.UserVenueTable)
