package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"internportal/internal/auth"
	"internportal/internal/domain"
	"internportal/internal/metrics"
)

// App carries the dependencies shared by the API handlers.
type App struct {
	Profiles    domain.ProfileRepository
	Leaderboard domain.LeaderboardRepository
	Auth        auth.Strategy
	Logger      zerolog.Logger
	Metrics     *metrics.Metrics
	Now         func() time.Time
}

func NewApp(profiles domain.ProfileRepository, leaderboard domain.LeaderboardRepository, strategy auth.Strategy, logger zerolog.Logger, m *metrics.Metrics) *App {
	return &App{
		Profiles:    profiles,
		Leaderboard: leaderboard,
		Auth:        strategy,
		Logger:      logger,
		Metrics:     m,
		Now:         time.Now,
	}
}

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, errorResponse{Success: false, Message: message})
}

func (a *App) logger(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &a.Logger
}

// TooManyRequests answers a request rejected by the rate limiter.
func (a *App) TooManyRequests(w http.ResponseWriter, r *http.Request) {
	a.logger(r).Warn().Str("path", r.URL.Path).Msg("rate limited")
	a.error(w, http.StatusTooManyRequests, "Too many requests, please try again later")
}
