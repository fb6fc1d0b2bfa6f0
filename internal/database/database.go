package database

import (
	sq "github.com/Masterminds/squirrel"
)

var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	EventsTable         = "events"
	EventOverridesTable = "event_overrides"
	VenuesTable         = "venues"
	UsersTable          = "users"
	UserVenueTable      = "user_venue_settings"
)
