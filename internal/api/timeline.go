package api

import (
	"fmt"
	"net/http"

	"github.com/localscene/events-backend/internal/business/schedule"
	"github.com/localscene/events-backend/internal/config"
	"github.com/localscene/events-backend/internal/dates"
	"github.com/localscene/events-backend/internal/model"
	"github.com/localscene/events-backend/internal/pkg/validator"
)

func (a *Api) timelineHandler(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	v := validator.New()
	if from != "" {
		v.Check(dates.ValidKey(from), "from", "must be a YYYY-MM-DD date")
	}
	if to != "" {
		v.Check(dates.ValidKey(to), "to", "must be a YYYY-MM-DD date")
	}
	if from != "" && to != "" {
		v.Check(from <= to, "to", "must not precede from")
	}
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	var groups map[string][]*model.EventOccurrenceEntry
	var err error

	if from == "" && to == "" {
		groups, err = a.schedule.DiscoveryTimeline(r.Context(), config.TimelineWindowDays())
	} else {
		groups, err = a.schedule.Timeline(r.Context(), from, to, model.EventsFilter{Statuses: schedule.DiscoveryStatuses})
	}
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("timeline: %w", err))
		return
	}

	resp, err := mapToTimelineResp(groups)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) tonightHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := a.schedule.Tonight(r.Context(), config.TimelineWindowDays())
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("tonight: %w", err))
		return
	}

	// cancelled occurrences stay in the pipeline for host views but never
	// reach the public tonight surface
	visible := make([]*model.EventOccurrenceEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsCancelled {
			continue
		}
		visible = append(visible, entry)
	}

	resp, err := mapSlice(visible, mapToEntryResp)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

type mapPinResp struct {
	venueResp
	UpcomingCount int `json:"upcoming_count"`
}

func (a *Api) mapHandler(w http.ResponseWriter, r *http.Request) {
	venues, err := a.venues.GetVenues(r.Context(), a.db)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get venues: %w", err))
		return
	}

	groups, err := a.schedule.DiscoveryTimeline(r.Context(), config.TimelineWindowDays())
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("timeline: %w", err))
		return
	}

	counts := make(map[int64]int)
	for _, entries := range groups {
		for _, entry := range entries {
			if entry.IsCancelled {
				continue
			}
			counts[entry.Event.VenueID]++
		}
	}

	resp := make([]*mapPinResp, 0, len(venues))
	for _, venue := range venues {
		vr, err := mapToVenueResp(venue)
		if err != nil {
			a.serverErrorResponse(w, r, err)
			return
		}
		resp = append(resp, &mapPinResp{venueResp: *vr, UpcomingCount: counts[venue.ID]})
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) digestPreviewHandler(w http.ResponseWriter, r *http.Request) {
	groups, err := a.schedule.Digest(r.Context(), config.DigestWindowDays(), config.TimelineWindowDays())
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("digest: %w", err))
		return
	}

	resp, err := mapToTimelineResp(groups)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
