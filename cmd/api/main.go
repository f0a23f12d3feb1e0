package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"internportal/internal/adapter/repo"
	"internportal/internal/auth"
	"internportal/internal/http/handlers"
	"internportal/internal/http/httpapi"
	"internportal/internal/infra"
	"internportal/internal/metrics"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv, "api")

	var tokens auth.TokenIssuer = auth.StaticTokens{}
	if cfg.TokenMode == infra.TokenModeJWT {
		tokens, err = auth.NewJWTIssuer(cfg.JWTSecret, "intern-portal", cfg.JWTTTL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to build token issuer")
		}
	}

	profiles := repo.NewProfileRepo(repo.SeedProfile())
	leaderboard := repo.NewLeaderboardRepo(repo.SeedLeaderboard())
	app := handlers.NewApp(profiles, leaderboard, auth.NewAcceptAny(profiles, tokens), logger, metrics.New("api"))

	router := httpapi.NewRouter(app, httpapi.Options{
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})
	server := infra.NewHTTPServer(cfg, cfg.Port, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Str("tokens", cfg.TokenMode).Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
