package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rewearhq/rewear-backend/api/controllers"
	"github.com/rewearhq/rewear-backend/api/middleware"
	"github.com/rewearhq/rewear-backend/internal/auth"
	"github.com/rewearhq/rewear-backend/internal/items"
	"github.com/rewearhq/rewear-backend/internal/moderation"
	"github.com/rewearhq/rewear-backend/internal/points"
	"github.com/rewearhq/rewear-backend/internal/swaps"
	"github.com/rewearhq/rewear-backend/internal/users"
	"github.com/rewearhq/rewear-backend/pkg/auth/session"
	"github.com/rewearhq/rewear-backend/pkg/config"
	"github.com/rewearhq/rewear-backend/pkg/db"
	"github.com/rewearhq/rewear-backend/pkg/logger"
	"github.com/rewearhq/rewear-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	sessions session.AccessSessionChecker,
	gatherer prometheus.Gatherer,
	authService auth.Service,
	usersRepo users.Repository,
	itemsService items.Service,
	swapsService swaps.Service,
	pointsService points.Service,
	moderationService moderation.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.Liveness())
		r.Get("/ready", controllers.Readiness(dbP, redisClient, logg))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.Register(authService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.Login(authService, logg))
		r.Post("/refresh", controllers.Refresh(authService, logg))
		r.With(middleware.Auth(cfg.JWT, sessions, logg)).Post("/logout", controllers.Logout(authService, logg))
	})

	// Catalog browsing is public so visitors can window-shop before signing up.
	r.Route("/api/v1/items", func(r chi.Router) {
		r.Get("/", controllers.ItemsList(itemsService, logg))
		r.Get("/{itemId}", controllers.ItemGet(itemsService, logg))
		r.With(middleware.Auth(cfg.JWT, sessions, logg)).Post("/", controllers.ItemCreate(itemsService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))

		r.Route("/users/me", func(r chi.Router) {
			r.Get("/", controllers.Me(usersRepo, logg))
			r.Patch("/", controllers.UpdateMe(usersRepo, logg))
		})

		r.Route("/swaps", func(r chi.Router) {
			r.Get("/", controllers.SwapsList(swapsService, logg))
			r.Post("/", controllers.SwapCreate(swapsService, logg))
			r.Get("/{swapId}", controllers.SwapGet(swapsService, logg))
			r.Patch("/{swapId}", controllers.SwapUpdate(swapsService, logg))
		})

		r.Route("/points", func(r chi.Router) {
			r.Get("/", controllers.PointsHistory(pointsService, logg))
			r.Get("/balance", controllers.PointsBalance(pointsService, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))
		r.Use(middleware.RequireRole("admin", logg))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.AdminUsersList(moderationService, logg))
			r.Patch("/{userId}", controllers.AdminUserModerate(moderationService, logg))
		})
		r.Route("/items", func(r chi.Router) {
			r.Get("/", controllers.AdminItemsList(moderationService, logg))
			r.Patch("/{itemId}", controllers.AdminItemModerate(moderationService, logg))
			r.Post("/bulk-delete", controllers.AdminItemsBulkDelete(moderationService, logg))
		})
		r.Route("/swaps", func(r chi.Router) {
			r.Get("/", controllers.AdminSwapsList(moderationService, logg))
			r.Patch("/{swapId}", controllers.AdminSwapModerate(moderationService, logg))
		})
	})

	return r
}
