// Package digest composes and delivers the weekly happenings digest. It
// runs the same expansion pipeline as the discovery surfaces, with the
// digest's narrower status filter, and pushes a summary to members who
// subscribed to at least one venue.
package digest

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/xlab/closer"
	"go.uber.org/zap"

	"github.com/localscene/events-backend/internal/config"
	"github.com/localscene/events-backend/internal/database"
	"github.com/localscene/events-backend/internal/dates"
	"github.com/localscene/events-backend/internal/model"
	"github.com/localscene/events-backend/internal/pkg/fcm"
)

type Sender struct {
	db       database.PGX
	logger   *zap.SugaredLogger
	cal      *dates.Calendar
	schedule scheduleService
	venues   venuesRepository
	users    usersRepository
	markers  markerRepository
	fcm      fcmService
	cron     *cron.Cron
}

type scheduleService interface {
	Digest(ctx context.Context, days, horizonDays int) (map[string][]*model.EventOccurrenceEntry, error)
}

type venuesRepository interface {
	GetUserVenueSettings(ctx context.Context, q database.Queryable, filter model.UserVenueSettingsFilter) ([]*model.VenueSettings, error)
}

type usersRepository interface {
	GetUsersByIDs(ctx context.Context, q database.Queryable, ids []int64) ([]*model.User, error)
}

type markerRepository interface {
	MarkSent(ctx context.Context, weekKey string) (bool, error)
}

type fcmService interface {
	SendMessageBatch(ctx context.Context, ms []*fcm.Message) error
}

func NewSender(
	db database.PGX,
	logger *zap.SugaredLogger,
	cal *dates.Calendar,
	schedule scheduleService,
	venues venuesRepository,
	users usersRepository,
	markers markerRepository,
	fcmSvc fcmService,
) *Sender {
	return &Sender{
		db:       db,
		logger:   logger,
		cal:      cal,
		schedule: schedule,
		venues:   venues,
		users:    users,
		markers:  markers,
		fcm:      fcmSvc,
	}
}

func (s *Sender) Start(ctx context.Context) error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(config.DigestSchedule(), func() {
		if err := s.run(ctx); err != nil {
			s.logger.Errorw("digest run failed", "err", err)
		}
	}); err != nil {
		return fmt.Errorf("schedule digest: %w", err)
	}

	s.cron.Start()
	closer.Bind(func() {
		<-s.cron.Stop().Done()
	})

	return nil
}

func (s *Sender) run(ctx context.Context) error {
	weekStart := s.cal.Today()

	first, err := s.markers.MarkSent(ctx, weekStart)
	if err != nil {
		return fmt.Errorf("mark digest sent: %w", err)
	}
	if !first {
		s.logger.Infow("digest already sent", "week_start", weekStart)
		return nil
	}

	groups, err := s.schedule.Digest(ctx, config.DigestWindowDays(), config.TimelineWindowDays())
	if err != nil {
		return fmt.Errorf("compose digest: %w", err)
	}

	settings, err := s.venues.GetUserVenueSettings(ctx, s.db, model.UserVenueSettingsFilter{})
	if err != nil {
		return fmt.Errorf("get venue subscriptions: %w", err)
	}

	venuesByUser := map[int64]map[int64]struct{}{}
	for _, st := range settings {
		if !st.Notify {
			continue
		}
		if venuesByUser[st.UserID] == nil {
			venuesByUser[st.UserID] = map[int64]struct{}{}
		}
		venuesByUser[st.UserID][st.VenueID] = struct{}{}
	}

	if len(venuesByUser) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(venuesByUser))
	for id := range venuesByUser {
		ids = append(ids, id)
	}

	subscribers, err := s.users.GetUsersByIDs(ctx, s.db, ids)
	if err != nil {
		return fmt.Errorf("get subscribers: %w", err)
	}

	var messages []*fcm.Message
	for _, u := range subscribers {
		if u.DeviceToken == "" {
			continue
		}

		count := countForVenues(groups, venuesByUser[u.ID])
		if count == 0 {
			continue
		}

		messages = append(messages, &fcm.Message{
			Token: u.DeviceToken,
			Title: "This week in the scene",
			Body:  fmt.Sprintf("%d happenings at your venues this week", count),
			Data: map[string]string{
				"type":       "weekly_digest",
				"week_start": weekStart,
			},
		})
	}

	if len(messages) == 0 {
		return nil
	}

	if err := s.fcm.SendMessageBatch(ctx, messages); err != nil {
		return fmt.Errorf("send digest batch: %w", err)
	}

	s.logger.Infow("digest sent", "week_start", weekStart, "recipients", len(messages))
	return nil
}

// countForVenues counts the member's non-cancelled occurrences across the
// digest week.
func countForVenues(groups map[string][]*model.EventOccurrenceEntry, venueIDs map[int64]struct{}) int {
	count := 0
	for _, entries := range groups {
		for _, e := range entries {
			if e.IsCancelled {
				continue
			}
			if _, ok := venueIDs[e.Event.VenueID]; ok {
				count++
			}
		}
	}

	return count
}
