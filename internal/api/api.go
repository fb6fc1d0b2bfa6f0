package api

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/localscene/events-backend/internal/database"
	"github.com/localscene/events-backend/internal/model"
	"github.com/localscene/events-backend/internal/pkg/oauth"
)

type Api struct {
	handler    http.Handler
	logger     *zap.SugaredLogger
	randSource io.Reader

	jwts          jwtManager
	tokenParser   tokenParser
	refreshTokens refreshTokenRepository

	db        database.PGX
	users     userRepository
	events    eventsRepository
	overrides overridesRepository
	venues    venuesRepository
	schedule  scheduleService
}

type jwtManager interface {
	CreateToken(id int64) (string, error)
	GetIdFromToken(token string) (int64, error)
}

type tokenParser interface {
	GetInfoGoogle(ctx context.Context, authCode string) (*oauth.GoogleInfo, error)
}

type refreshTokenRepository interface {
	Add(ctx context.Context, session string, id int64) error
	Get(ctx context.Context, session string) (int64, error)
	Refresh(ctx context.Context, old, new string) error
	Delete(ctx context.Context, session string) error
	DeleteByUserID(ctx context.Context, id int64) error
}

type userRepository interface {
	CreateUser(ctx context.Context, q database.Queryable, user *model.UserCreate) (int64, error)
	GetUserByEmail(ctx context.Context, q database.Queryable, email string) (*model.User, error)
	GetUserByID(ctx context.Context, q database.Queryable, id int64) (*model.User, error)
	UpdateDeviceToken(ctx context.Context, q database.Queryable, id int64, token string) error
}

type eventsRepository interface {
	CreateEvent(ctx context.Context, q database.Queryable, event *model.EventCreate) (int64, error)
	GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.EventDefinition, error)
	GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.EventDefinition, error)
	UpdateEvent(ctx context.Context, q database.Queryable, id int64, event *model.EventCreate) error
	DeleteEvent(ctx context.Context, q database.Queryable, id int64) error
}

type overridesRepository interface {
	UpsertOverride(ctx context.Context, q database.Queryable, override *model.OverrideCreate) (int64, error)
	DeleteOverride(ctx context.Context, q database.Queryable, eventID string, dateKey string) error
}

type venuesRepository interface {
	CreateVenue(ctx context.Context, q database.Queryable, venue *model.VenueCreate) (int64, error)
	GetVenueByID(ctx context.Context, q database.Queryable, id int64) (*model.Venue, error)
	GetVenues(ctx context.Context, q database.Queryable) ([]*model.Venue, error)
	UpdateVenue(ctx context.Context, q database.Queryable, id int64, venue *model.VenueCreate) error
	SetUserVenueSettings(ctx context.Context, q database.Queryable, settings *model.VenueSettings) error
}

type scheduleService interface {
	Timeline(ctx context.Context, windowStart, windowEnd string, filter model.EventsFilter) (map[string][]*model.EventOccurrenceEntry, error)
	DiscoveryTimeline(ctx context.Context, days int) (map[string][]*model.EventOccurrenceEntry, error)
	Tonight(ctx context.Context, horizonDays int) ([]*model.EventOccurrenceEntry, error)
	Digest(ctx context.Context, days, horizonDays int) (map[string][]*model.EventOccurrenceEntry, error)
}

func NewApi(
	logger *zap.SugaredLogger,
	randSource io.Reader,
	jwts jwtManager,
	tokenParser tokenParser,
	refreshTokens refreshTokenRepository,
	db database.PGX,
	users userRepository,
	events eventsRepository,
	overrides overridesRepository,
	venues venuesRepository,
	schedule scheduleService,
) (*Api, error) {
	a := &Api{
		logger:        logger,
		randSource:    randSource,
		jwts:          jwts,
		tokenParser:   tokenParser,
		refreshTokens: refreshTokens,
		db:            db,
		users:         users,
		events:        events,
		overrides:     overrides,
		venues:        venues,
		schedule:      schedule,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signin/google", a.signInGoogleHandler)
		r.Post("/refresh", a.refreshTokenHandler)
		r.Post("/logout", a.logoutUserHandler)
	})

	// public discovery surfaces
	r.Get("/timeline", a.timelineHandler)
	r.Get("/tonight", a.tonightHandler)
	r.Get("/map", a.mapHandler)
	r.Get("/venues", a.listVenuesHandler)
	r.Get("/venues/{id}", a.getVenueHandler)

	r.With(a.auth).Route("/", func(r chi.Router) {
		r.With(a.userCtx).Route("/user", func(r chi.Router) {
			r.Get("/", a.getUserHandler)
			r.Put("/device", a.updateDeviceTokenHandler)
			r.Put("/venues/{id}/settings", a.setVenueSettingsHandler)
		})

		r.With(a.userCtx).Route("/events", func(r chi.Router) {
			r.Get("/", a.listMyEventsHandler)
			r.Post("/", a.createEventHandler)

			r.With(a.eventCtx).Route("/{id}", func(r chi.Router) {
				r.Get("/", a.getEventHandler)
				r.Put("/", a.updateEventHandler)
				r.Delete("/", a.deleteEventHandler)
				r.Put("/overrides/{date}", a.upsertOverrideHandler)
				r.Delete("/overrides/{date}", a.deleteOverrideHandler)
			})
		})

		r.With(a.userCtx, a.hostCtx).Route("/venues", func(r chi.Router) {
			r.Post("/", a.createVenueHandler)
			r.Put("/{id}", a.updateVenueHandler)
		})

		r.Get("/digest/preview", a.digestPreviewHandler)
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
