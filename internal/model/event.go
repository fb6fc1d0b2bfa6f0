package model

import "encoding/json"

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPending   EventStatus = "pending"
	EventStatusApproved  EventStatus = "approved"
	EventStatusActive    EventStatus = "active"
	EventStatusFeatured  EventStatus = "featured"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusDuplicate EventStatus = "duplicate"
)

type EventCreate struct {
	Title          string
	Description    string
	Status         EventStatus
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
	SignupURL      string
}

type EventDefinition struct {
	ID string
	EventCreate

	// Venue carries the joined venue columns on discovery reads; nil on
	// plain host-dashboard fetches.
	Venue *Venue
}

type OverrideStatus string

const (
	OverrideStatusNormal    OverrideStatus = "normal"
	OverrideStatusCancelled OverrideStatus = "cancelled"
)

// OverridePatch is the partial field replacement carried by an override.
// Only the fields below are recognized; anything else a host saved passes
// through Extra untouched so display layers still see it.
type OverridePatch struct {
	EventDate string
	StartTime string
	EndTime   string
	VenueID   *int64
	Extra     map[string]json.RawMessage
}

func (p *OverridePatch) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["event_date"]; ok {
		_ = json.Unmarshal(v, &p.EventDate)
		delete(raw, "event_date")
	}
	if v, ok := raw["start_time"]; ok {
		_ = json.Unmarshal(v, &p.StartTime)
		delete(raw, "start_time")
	}
	if v, ok := raw["end_time"]; ok {
		_ = json.Unmarshal(v, &p.EndTime)
		delete(raw, "end_time")
	}
	if v, ok := raw["venue_id"]; ok {
		_ = json.Unmarshal(v, &p.VenueID)
		delete(raw, "venue_id")
	}

	if len(raw) != 0 {
		p.Extra = raw
	}

	return nil
}

func (p OverridePatch) MarshalJSON() ([]byte, error) {
	raw := make(map[string]interface{}, len(p.Extra)+4)
	for k, v := range p.Extra {
		raw[k] = v
	}

	if p.EventDate != "" {
		raw["event_date"] = p.EventDate
	}
	if p.StartTime != "" {
		raw["start_time"] = p.StartTime
	}
	if p.EndTime != "" {
		raw["end_time"] = p.EndTime
	}
	if p.VenueID != nil {
		raw["venue_id"] = p.VenueID
	}

	return json.Marshal(raw)
}

func (p OverridePatch) IsZero() bool {
	return p.EventDate == "" && p.StartTime == "" && p.EndTime == "" &&
		p.VenueID == nil && len(p.Extra) == 0
}

type OverrideCreate struct {
	EventID string
	DateKey string
	Status  OverrideStatus
	Patch   OverridePatch

	// OverrideStartTime is a denormalized copy of Patch.StartTime kept for
	// display queries; Patch stays authoritative.
	OverrideStartTime string
}

type OccurrenceOverride struct {
	ID int64
	OverrideCreate
}

// EventOccurrenceEntry is one row of the expanded per-day timeline. It is
// derived per request and never persisted.
type EventOccurrenceEntry struct {
	Event       *EventDefinition
	DateKey     string
	IsConfident bool
	Override    *OccurrenceOverride
	IsCancelled bool

	IsRescheduled   bool
	OriginalDateKey string
	DisplayDate     string
}

type EventsFilter struct {
	Statuses []EventStatus
	VenueIDs []int64
	HostID   int64
}

type OverridesFilter struct {
	EventIDs []string
	FromKey  string
	ToKey    string
}
