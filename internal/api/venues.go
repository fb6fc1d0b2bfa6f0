package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/localscene/events-backend/internal/model"
	"github.com/localscene/events-backend/internal/pkg/validator"
)

type venueReq struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Website     string  `json:"website"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

func validateVenueReq(v *validator.Validator, req *venueReq) {
	v.Check(len(req.Name) != 0, "name", "name must be provided")
	v.Check(req.Lat >= -90 && req.Lat <= 90, "lat", "must be a latitude")
	v.Check(req.Lng >= -180 && req.Lng <= 180, "lng", "must be a longitude")
}

func mapVenueReq(req *venueReq) *model.VenueCreate {
	return &model.VenueCreate{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		Website:     req.Website,
		Description: req.Description,
		Lat:         req.Lat,
		Lng:         req.Lng,
	}
}

func (a *Api) listVenuesHandler(w http.ResponseWriter, r *http.Request) {
	venues, err := a.venues.GetVenues(r.Context(), a.db)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get venues: %w", err))
		return
	}

	resp, err := mapSlice(venues, mapToVenueResp)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getVenueHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	venue, err := a.venues.GetVenueByID(r.Context(), a.db, id)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("get venue: %w", err))
		}
		return
	}

	resp, err := mapToVenueResp(venue)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) createVenueHandler(w http.ResponseWriter, r *http.Request) {
	req := &venueReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	validateVenueReq(v, req)
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	id, err := a.venues.CreateVenue(r.Context(), a.db, mapVenueReq(req))
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create venue: %w", err))
		return
	}

	resp := map[string]int64{"id": id}
	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateVenueHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	if _, err := a.venues.GetVenueByID(r.Context(), a.db, id); err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, err)
		}
		return
	}

	req := &venueReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	validateVenueReq(v, req)
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	if err := a.venues.UpdateVenue(r.Context(), a.db, id, mapVenueReq(req)); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("update venue: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
