package events

import (
	"strconv"

	"github.com/localscene/events-backend/internal/model"
)

type eventDTO struct {
	ID             int64
	Title          string
	Description    string
	Status         string
	VenueID        int64
	HostID         int64
	EventDate      string
	DayOfWeek      string
	RecurrenceRule string
	IsRecurring    bool
	CustomDates    []string
	MaxOccurrences int
	StartTime      string
	EndTime        string
	SignupURL      string `db:"signup_url"`

	VenueName    string
	VenueAddress string
	VenueCity    string
	VenueLat     float64
	VenueLng     float64
}

func mapToEvent(dto *eventDTO) *model.EventDefinition {
	return &model.EventDefinition{
		ID: strconv.FormatInt(dto.ID, 10),
		EventCreate: model.EventCreate{
			Title:          dto.Title,
			Description:    dto.Description,
			Status:         model.EventStatus(dto.Status),
			VenueID:        dto.VenueID,
			HostID:         dto.HostID,
			EventDate:      dto.EventDate,
			DayOfWeek:      dto.DayOfWeek,
			RecurrenceRule: dto.RecurrenceRule,
			IsRecurring:    dto.IsRecurring,
			CustomDates:    dto.CustomDates,
			MaxOccurrences: dto.MaxOccurrences,
			StartTime:      dto.StartTime,
			EndTime:        dto.EndTime,
			SignupURL:      dto.SignupURL,
		},
		Venue: &model.Venue{
			ID: dto.VenueID,
			VenueCreate: model.VenueCreate{
				Name:    dto.VenueName,
				Address: dto.VenueAddress,
				City:    dto.VenueCity,
				Lat:     dto.VenueLat,
				Lng:     dto.VenueLng,
			},
		},
	}
}
