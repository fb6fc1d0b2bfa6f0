package schedule

import "github.com/localscene/events-backend/internal/model"

// DiscoveryStatuses is the one allow-list every public discovery surface
// (homepage, happenings timeline, map, digest preview) filters by. Pages
// used to hard-code their own lists and drifted; query through this
// constant instead.
var DiscoveryStatuses = []model.EventStatus{
	model.EventStatusApproved,
	model.EventStatusActive,
	model.EventStatusFeatured,
}

// DigestStatuses is the single sanctioned exception: the weekly digest
// intentionally leaves out featured one-offs that have not been confirmed
// by their host yet.
var DigestStatuses = []model.EventStatus{
	model.EventStatusApproved,
	model.EventStatusActive,
}

// VenueJoinColumns is the shared venue join shape for discovery queries,
// so every surface renders venues from identical fields.
var VenueJoinColumns = []string{
	"v.id venue_id",
	"v.name venue_name",
	"v.address venue_address",
	"v.city venue_city",
	"v.lat venue_lat",
	"v.lng venue_lng",
}
