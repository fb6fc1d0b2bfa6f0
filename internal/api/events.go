package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/localscene/events-backend/internal/dates"
	"github.com/localscene/events-backend/internal/model"
	"github.com/localscene/events-backend/internal/pkg/validator"
)

type eventReq struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Status         string   `json:"status"`
	VenueID        int64    `json:"venue_id"`
	EventDate      string   `json:"event_date"`
	DayOfWeek      string   `json:"day_of_week"`
	RecurrenceRule string   `json:"recurrence_rule"`
	IsRecurring    bool     `json:"is_recurring"`
	CustomDates    []string `json:"custom_dates"`
	MaxOccurrences int      `json:"max_occurrences"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	SignupURL      string   `json:"signup_url"`
}

var knownStatuses = map[model.EventStatus]struct{}{
	model.EventStatusDraft:     {},
	model.EventStatusPending:   {},
	model.EventStatusApproved:  {},
	model.EventStatusActive:    {},
	model.EventStatusFeatured:  {},
	model.EventStatusCancelled: {},
	model.EventStatusDuplicate: {},
}

// validateEventReq is the boundary where scheduling fields are checked;
// past this point the pipeline assumes well-formed keys or falls back
// softly.
func validateEventReq(v *validator.Validator, req *eventReq) {
	v.Check(len(req.Title) != 0, "title", "title must be provided")
	v.Check(req.VenueID != 0, "venue_id", "venue must be provided")

	if req.Status != "" {
		_, ok := knownStatuses[model.EventStatus(req.Status)]
		v.Check(ok, "status", "unknown status")
	}

	if req.EventDate != "" {
		v.Check(dates.ValidKey(req.EventDate), "event_date", "must be a YYYY-MM-DD date")
	}

	if req.DayOfWeek != "" {
		_, ok := dates.ParseWeekdayName(req.DayOfWeek)
		v.Check(ok, "day_of_week", "unknown weekday name")
	}

	for _, d := range req.CustomDates {
		if !dates.ValidKey(d) {
			v.AddError("custom_dates", fmt.Sprintf("%q is not a YYYY-MM-DD date", d))
			break
		}
	}

	v.Check(req.MaxOccurrences >= 0, "max_occurrences", "must not be negative")

	hasSchedule := req.EventDate != "" || req.DayOfWeek != "" ||
		req.RecurrenceRule != "" || len(req.CustomDates) != 0
	v.Check(hasSchedule, "event_date", "an event needs a date, a weekday, a rule or custom dates")

	for key, val := range map[string]string{"start_time": req.StartTime, "end_time": req.EndTime} {
		if val == "" {
			continue
		}
		if _, err := time.Parse("15:04", val); err != nil {
			v.AddError(key, "must be a HH:MM time")
		}
	}
}

func mapEventReq(req *eventReq, hostID int64) *model.EventCreate {
	status := model.EventStatus(req.Status)
	if status == "" {
		status = model.EventStatusPending
	}

	return &model.EventCreate{
		Title:          req.Title,
		Description:    req.Description,
		Status:         status,
		VenueID:        req.VenueID,
		HostID:         hostID,
		EventDate:      req.EventDate,
		DayOfWeek:      req.DayOfWeek,
		RecurrenceRule: req.RecurrenceRule,
		IsRecurring:    req.IsRecurring,
		CustomDates:    req.CustomDates,
		MaxOccurrences: req.MaxOccurrences,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		SignupURL:      req.SignupURL,
	}
}

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	req := &eventReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	validateEventReq(v, req)
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	id, err := a.events.CreateEvent(r.Context(), a.db, mapEventReq(req, user.ID))
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create event: %w", err))
		return
	}

	resp := map[string]string{"id": strconv.FormatInt(id, 10)}
	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) listMyEventsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	events, err := a.events.GetEvents(r.Context(), a.db, model.EventsFilter{HostID: user.ID})
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get events: %w", err))
		return
	}

	resp, err := mapSlice(events, mapToEventResp)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventHandler(w http.ResponseWriter, r *http.Request) {
	event, ok := r.Context().Value(contextKeyEvent).(*model.EventDefinition)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	resp, err := mapToEventResp(event)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	event, ok := r.Context().Value(contextKeyEvent).(*model.EventDefinition)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	req := &eventReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	validateEventReq(v, req)
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	id, err := strconv.ParseInt(event.ID, 10, 64)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("parse event id %q: %w", event.ID, err))
		return
	}

	if err := a.events.UpdateEvent(r.Context(), a.db, id, mapEventReq(req, event.HostID)); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("update event: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	event, ok := r.Context().Value(contextKeyEvent).(*model.EventDefinition)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	id, err := strconv.ParseInt(event.ID, 10, 64)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("parse event id %q: %w", event.ID, err))
		return
	}

	if err := a.events.DeleteEvent(r.Context(), a.db, id); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("delete event: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
