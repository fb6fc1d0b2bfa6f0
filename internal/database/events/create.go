package events

import (
	"context"
	"fmt"

	"github.com/localscene/events-backend/internal/database"
	"github.com/localscene/events-backend/internal/model"
)

func (*Repository) CreateEvent(ctx context.Context, q database.Queryable, event *model.EventCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.EventsTable).
		Columns(
			"title",
			"description",
			"status",
			"venue_id",
			"host_id",
			"event_date",
			"day_of_week",
			"recurrence_rule",
			"is_recurring",
			"custom_dates",
			"max_occurrences",
			"start_time",
			"end_time",
			"signup_url",
		).
		Values(
			event.Title,
			event.Description,
			event.Status,
			event.VenueID,
			event.HostID,
			event.EventDate,
			event.DayOfWeek,
			event.RecurrenceRule,
			event.IsRecurring,
			event.CustomDates,
			event.MaxOccurrences,
			event.StartTime,
			event.EndTime,
			event.SignupURL,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
