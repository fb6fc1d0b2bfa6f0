package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/localscene/events-backend/internal/database"
	"github.com/localscene/events-backend/internal/model"
)

func (*Repository) UpdateEvent(ctx context.Context, q database.Queryable, id int64, event *model.EventCreate) error {
	qb := database.PSQL.
		Update(database.EventsTable).
		SetMap(map[string]interface{}{
			"title":           event.Title,
			"description":     event.Description,
			"status":          event.Status,
			"venue_id":        event.VenueID,
			"event_date":      event.EventDate,
			"day_of_week":     event.DayOfWeek,
			"recurrence_rule": event.RecurrenceRule,
			"is_recurring":    event.IsRecurring,
			"custom_dates":    event.CustomDates,
			"max_occurrences": event.MaxOccurrences,
			"start_time":      event.StartTime,
			"end_time":        event.EndTime,
			"signup_url":      event.SignupURL,
		}).
		Where(sq.Eq{"id": id})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
