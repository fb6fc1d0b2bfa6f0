package schedule

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/localscene/events-backend/internal/database"
	"github.com/localscene/events-backend/internal/dates"
	"github.com/localscene/events-backend/internal/model"
)

// Service fetches one snapshot of event and override rows per call and runs
// the expand → group → relocate pipeline over it. The pipeline itself is
// pure, so concurrent calls need no coordination.
type Service struct {
	db        database.PGX
	cal       *dates.Calendar
	logger    *zap.SugaredLogger
	events    eventsRepository
	overrides overridesRepository
}

type eventsRepository interface {
	GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.EventDefinition, error)
}

type overridesRepository interface {
	GetOverrides(ctx context.Context, q database.Queryable, filter model.OverridesFilter) ([]*model.OccurrenceOverride, error)
}

func NewService(db database.PGX, cal *dates.Calendar, logger *zap.SugaredLogger, events eventsRepository, overrides overridesRepository) *Service {
	return &Service{
		db:        db,
		cal:       cal,
		logger:    logger,
		events:    events,
		overrides: overrides,
	}
}

func (s *Service) Calendar() *dates.Calendar {
	return s.cal
}

// Timeline computes the per-day occurrence groups for the window. The
// override fetch uses the same inclusive range as the expansion: equality
// on a single day would miss relocations whose source date lies elsewhere
// in the window.
func (s *Service) Timeline(ctx context.Context, windowStart, windowEnd string, filter model.EventsFilter) (map[string][]*model.EventOccurrenceEntry, error) {
	events, err := s.events.GetEvents(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}

	ids := make([]string, len(events))
	for i, ev := range events {
		ids[i] = ev.ID
	}

	rows, err := s.overrides.GetOverrides(ctx, s.db, model.OverridesFilter{
		EventIDs: ids,
		FromKey:  windowStart,
		ToKey:    windowEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("overridesRepository.GetOverrides: %w", err)
	}

	lookup := BuildOverrideLookup(rows)
	if len(lookup) != len(rows) {
		s.logger.Debugw("duplicate override rows for same event and date",
			"rows", len(rows), "distinct", len(lookup))
	}

	groups := GroupOccurrences(s.cal, events, lookup, windowStart, windowEnd)
	return ApplyReschedules(groups), nil
}

// DiscoveryTimeline is Timeline over [today, today+days] with the shared
// discovery status allow-list applied.
func (s *Service) DiscoveryTimeline(ctx context.Context, days int) (map[string][]*model.EventOccurrenceEntry, error) {
	today := s.cal.Today()
	return s.Timeline(ctx, today, s.cal.AddDays(today, days), model.EventsFilter{Statuses: DiscoveryStatuses})
}

// Tonight returns today's group, computed over the full forward window so
// occurrences rescheduled onto today from later dates are not lost. A
// window truncated to just today silently drops those.
func (s *Service) Tonight(ctx context.Context, horizonDays int) ([]*model.EventOccurrenceEntry, error) {
	groups, err := s.DiscoveryTimeline(ctx, horizonDays)
	if err != nil {
		return nil, err
	}

	return groups[s.cal.Today()], nil
}

// Digest composes the weekly digest groups: the narrower digest status
// filter over [today, today+days], still expanded over the forward horizon
// first so relocations into the digest week are caught, then trimmed.
func (s *Service) Digest(ctx context.Context, days, horizonDays int) (map[string][]*model.EventOccurrenceEntry, error) {
	if horizonDays < days {
		horizonDays = days
	}

	today := s.cal.Today()
	groups, err := s.Timeline(ctx, today, s.cal.AddDays(today, horizonDays), model.EventsFilter{Statuses: DigestStatuses})
	if err != nil {
		return nil, err
	}

	return TrimWindow(groups, today, s.cal.AddDays(today, days)), nil
}

// TrimWindow drops groups outside [windowStart, windowEnd]. Used after
// relocation, never before, so entries moving into the kept window from a
// trimmed day survive.
func TrimWindow(groups map[string][]*model.EventOccurrenceEntry, windowStart, windowEnd string) map[string][]*model.EventOccurrenceEntry {
	res := make(map[string][]*model.EventOccurrenceEntry, len(groups))
	for day, entries := range groups {
		if day < windowStart || day > windowEnd {
			continue
		}
		res[day] = entries
	}

	return res
}
