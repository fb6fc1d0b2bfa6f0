package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/localscene/events-backend/internal/dates"
	"github.com/localscene/events-backend/internal/model"
	"github.com/localscene/events-backend/internal/pkg/validator"
)

type overrideReq struct {
	Status string              `json:"status"`
	Patch  model.OverridePatch `json:"patch"`
}

func (a *Api) upsertOverrideHandler(w http.ResponseWriter, r *http.Request) {
	event, ok := r.Context().Value(contextKeyEvent).(*model.EventDefinition)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	dateKey := chi.URLParam(r, "date")

	req := &overrideReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	status := model.OverrideStatus(req.Status)
	if status == "" {
		status = model.OverrideStatusNormal
	}

	v := validator.New()
	v.Check(dates.ValidKey(dateKey), "date", "must be a YYYY-MM-DD date")
	v.Check(status == model.OverrideStatusNormal || status == model.OverrideStatusCancelled,
		"status", "must be normal or cancelled")
	if req.Patch.EventDate != "" {
		v.Check(dates.ValidKey(req.Patch.EventDate), "patch.event_date", "must be a YYYY-MM-DD date")
	}
	for key, val := range map[string]string{"patch.start_time": req.Patch.StartTime, "patch.end_time": req.Patch.EndTime} {
		if val == "" {
			continue
		}
		if _, err := time.Parse("15:04", val); err != nil {
			v.AddError(key, "must be a HH:MM time")
		}
	}
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	if _, err := a.overrides.UpsertOverride(r.Context(), a.db, &model.OverrideCreate{
		EventID: event.ID,
		DateKey: dateKey,
		Status:  status,
		Patch:   req.Patch,
	}); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("upsert override: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) deleteOverrideHandler(w http.ResponseWriter, r *http.Request) {
	event, ok := r.Context().Value(contextKeyEvent).(*model.EventDefinition)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	dateKey := chi.URLParam(r, "date")
	if !dates.ValidKey(dateKey) {
		a.notFoundResponse(w, r)
		return
	}

	if err := a.overrides.DeleteOverride(r.Context(), a.db, event.ID, dateKey); err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("delete override: %w", err))
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}
