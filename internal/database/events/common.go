package events

import (
	"github.com/localscene/events-backend/internal/business/schedule"
	"github.com/localscene/events-backend/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var columns = []string{
	"e.id",
	"e.title",
	"e.description",
	"e.status",
	"e.venue_id",
	"e.host_id",
	"e.event_date",
	"e.day_of_week",
	"e.recurrence_rule",
	"e.is_recurring",
	"e.custom_dates",
	"e.max_occurrences",
	"e.start_time",
	"e.end_time",
	"e.signup_url",
}

// Discovery reads join venues through the shared column contract so every
// surface renders venues from the same shape.
var baseQuery = database.PSQL.
	Select(append(columns, schedule.VenueJoinColumns...)...).
	From(database.EventsTable + " e").
	Join(database.VenuesTable + " v on v.id = e.venue_id")
