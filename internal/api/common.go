package api

import (
	"github.com/localscene/events-backend/internal/business/schedule"
	"github.com/localscene/events-backend/internal/model"
)

type userResp struct {
	ID       int64  `json:"id,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Photo    string `json:"photo,omitempty"`
	IsHost   bool   `json:"is_host,omitempty"`
}

func mapToUserResp(user *model.User) (*userResp, error) {
	return &userResp{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Photo:    user.Photo,
		IsHost:   user.IsHost,
	}, nil
}

type venueResp struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address,omitempty"`
	City        string  `json:"city,omitempty"`
	Website     string  `json:"website,omitempty"`
	Description string  `json:"description,omitempty"`
	Lat         float64 `json:"lat,omitempty"`
	Lng         float64 `json:"lng,omitempty"`
}

func mapToVenueResp(venue *model.Venue) (*venueResp, error) {
	return &venueResp{
		ID:          venue.ID,
		Name:        venue.Name,
		Address:     venue.Address,
		City:        venue.City,
		Website:     venue.Website,
		Description: venue.Description,
		Lat:         venue.Lat,
		Lng:         venue.Lng,
	}, nil
}

type eventResp struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Status         string     `json:"status"`
	VenueID        int64      `json:"venue_id"`
	EventDate      string     `json:"event_date,omitempty"`
	DayOfWeek      string     `json:"day_of_week,omitempty"`
	RecurrenceRule string     `json:"recurrence_rule,omitempty"`
	IsRecurring    bool       `json:"is_recurring,omitempty"`
	CustomDates    []string   `json:"custom_dates,omitempty"`
	MaxOccurrences int        `json:"max_occurrences,omitempty"`
	StartTime      string     `json:"start_time,omitempty"`
	EndTime        string     `json:"end_time,omitempty"`
	SignupURL      string     `json:"signup_url,omitempty"`
	Venue          *venueResp `json:"venue,omitempty"`
}

func mapToEventResp(event *model.EventDefinition) (*eventResp, error) {
	resp := &eventResp{
		ID:             event.ID,
		Title:          event.Title,
		Description:    event.Description,
		Status:         string(event.Status),
		VenueID:        event.VenueID,
		EventDate:      event.EventDate,
		DayOfWeek:      event.DayOfWeek,
		RecurrenceRule: event.RecurrenceRule,
		IsRecurring:    event.IsRecurring,
		CustomDates:    event.CustomDates,
		MaxOccurrences: event.MaxOccurrences,
		StartTime:      event.StartTime,
		EndTime:        event.EndTime,
		SignupURL:      event.SignupURL,
	}

	if event.Venue != nil {
		resp.Venue, _ = mapToVenueResp(event.Venue)
	}

	return resp, nil
}

type entryResp struct {
	EventID      string     `json:"event_id"`
	Title        string     `json:"title"`
	Venue        *venueResp `json:"venue,omitempty"`
	Date         string     `json:"date"`
	StartTime    string     `json:"start_time,omitempty"`
	EndTime      string     `json:"end_time,omitempty"`
	IsConfident  bool       `json:"is_confident"`
	IsCancelled  bool       `json:"is_cancelled,omitempty"`
	IsRescheduled bool      `json:"is_rescheduled,omitempty"`
	OriginalDate string     `json:"original_date,omitempty"`
	DisplayDate  string     `json:"display_date,omitempty"`
}

func mapToEntryResp(entry *model.EventOccurrenceEntry) (*entryResp, error) {
	resp := &entryResp{
		EventID:       entry.Event.ID,
		Title:         entry.Event.Title,
		Date:          entry.DateKey,
		StartTime:     entry.Event.StartTime,
		EndTime:       entry.Event.EndTime,
		IsConfident:   entry.IsConfident,
		IsCancelled:   entry.IsCancelled,
		IsRescheduled: entry.IsRescheduled,
		OriginalDate:  entry.OriginalDateKey,
		DisplayDate:   entry.DisplayDate,
	}

	if entry.Event.Venue != nil {
		resp.Venue, _ = mapToVenueResp(entry.Event.Venue)
	}

	// the patch wins over the definition for display times
	if entry.Override != nil {
		if entry.Override.Patch.StartTime != "" {
			resp.StartTime = entry.Override.Patch.StartTime
		}
		if entry.Override.Patch.EndTime != "" {
			resp.EndTime = entry.Override.Patch.EndTime
		}
	}

	return resp, nil
}

type dayResp struct {
	Date    string       `json:"date"`
	Entries []*entryResp `json:"entries"`
}

func mapToTimelineResp(groups map[string][]*model.EventOccurrenceEntry) ([]*dayResp, error) {
	days := schedule.SortedDays(groups)

	res := make([]*dayResp, 0, len(days))
	for _, day := range days {
		entries, err := mapSlice(groups[day], mapToEntryResp)
		if err != nil {
			return nil, err
		}

		res = append(res, &dayResp{Date: day, Entries: entries})
	}

	return res, nil
}
