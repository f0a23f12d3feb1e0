package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"internportal/internal/http/handlers"
	"internportal/internal/middleware"
)

// Options tune the cross-cutting middleware of the API router.
type Options struct {
	AllowedOrigins  []string
	RateLimitPerMin int
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(app.Logger),
		chimw.Recoverer,
		middleware.CORS(opts.AllowedOrigins),
	)
	if app.Metrics != nil {
		r.Use(app.Metrics.Instrument)
		r.Method(http.MethodGet, "/metrics", app.Metrics.Handler())
	}

	r.Get("/health", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute, http.HandlerFunc(app.TooManyRequests)))

		r.Get("/intern", app.Intern)
		r.Get("/leaderboard", app.LeaderboardList)
		r.Post("/login", app.Login)
		r.Post("/signup", app.Signup)

		r.Get("/openapi.json", app.APISpec)
		r.Get("/docs", app.APIDocs)
	})

	return r
}
