package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/storefront/api/controllers"
	cartcontrollers "github.com/angelmondragon/storefront/api/controllers/cart"
	"github.com/angelmondragon/storefront/api/middleware"
	"github.com/angelmondragon/storefront/api/responses"
	"github.com/angelmondragon/storefront/internal/cart"
	checkoutsvc "github.com/angelmondragon/storefront/internal/checkout"
	"github.com/angelmondragon/storefront/internal/notify"
	"github.com/angelmondragon/storefront/internal/render"
	"github.com/angelmondragon/storefront/pkg/config"
	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
	"github.com/angelmondragon/storefront/pkg/logger"
	"github.com/angelmondragon/storefront/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	sessions *cart.Sessions,
	renderer *render.Renderer,
	checkoutService checkoutsvc.Service,
	notifier notify.Service,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.HTTP.CORSOrigins),
	)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.New(pkgerrors.CodeMethodNotAllowed, "method not allowed"))
	})

	// Interface values stay nil without redis so the guards pass through.
	var (
		idempotencyStore redis.IdempotencyStore
		rateLimiter      redis.RateLimiter
		redisPinger      controllers.Pinger
	)
	if redisClient != nil {
		idempotencyStore = redisClient
		rateLimiter = redisClient
		redisPinger = redisClient
	}

	addItemPolicy := middleware.NewRateLimitPolicy(
		"add_item",
		cfg.RateLimit.AddItemWindow,
		cfg.RateLimit.AddItemLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{"redis": redisPinger}))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Session(middleware.SessionOptions{
			CookieName: cfg.Session.CookieName,
			MaxAge:     cfg.Session.IdleTTL,
			Secure:     cfg.Session.SecureCookie || cfg.App.IsProd(),
		}, logg))

		r.Get("/ping", controllers.PublicPing())

		r.Route("/v1/cart", func(r chi.Router) {
			r.Get("/", cartcontrollers.CartFetch(sessions, renderer, logg))
			r.Delete("/", cartcontrollers.CartClear(sessions, renderer, logg))
			r.With(middleware.RateLimit(addItemPolicy, rateLimiter, logg)).
				Post("/items", cartcontrollers.CartAddItem(sessions, renderer, notifier, logg))
			r.Patch("/items/{itemId}", cartcontrollers.CartChangeQuantity(sessions, renderer, logg))
			r.Delete("/items/{itemId}", cartcontrollers.CartRemoveItem(sessions, renderer, logg))
			r.Post("/quote", cartcontrollers.CartQuote(sessions, renderer, logg))
		})

		r.Get("/v1/notifications", controllers.ListNotifications(notifier, logg))

		r.With(middleware.Idempotency(idempotencyStore, logg)).
			Post("/v1/checkout", controllers.Checkout(checkoutService, sessions, logg))
	})

	return r
}
