package user

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
		"full_name",
		"email",
		"photo",
		"is_host",
		"device_token",
	).
	From(database.UsersTable)
