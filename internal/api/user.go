package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gerow/go-color"
	"github.com/go-chi/chi/v5"

	"github.com/localscene/events-backend/internal/model"
)

func (a *Api) getUserHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	resp, err := mapToUserResp(user)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateDeviceTokenHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	req := &struct {
		DeviceToken string `json:"device_token"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.users.UpdateDeviceToken(r.Context(), a.db, user.ID, req.DeviceToken); err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) setVenueSettingsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	venueID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	if _, err := a.venues.GetVenueByID(r.Context(), a.db, venueID); err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, err)
		}
		return
	}

	req := &struct {
		Color  string `json:"color"`
		Notify bool   `json:"notify"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	colorRGB, err := color.HTMLToRGB(req.Color)
	if err != nil {
		a.badRequestResponse(w, r, errors.New("invalid color"))
		return
	}

	if err := a.venues.SetUserVenueSettings(r.Context(), a.db, &model.VenueSettings{
		UserID:  user.ID,
		VenueID: venueID,
		Color:   colorRGB,
		Notify:  req.Notify,
	}); err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
