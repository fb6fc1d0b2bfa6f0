package overrides

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
		"event_id",
		"date_key",
		"status",
		"override_patch",
		"override_start_time",
	).
	From(database.EventOverridesTable)
