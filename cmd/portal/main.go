package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"internportal/internal/client"
	"internportal/internal/infra"
	"internportal/internal/infra/geoip"
	"internportal/internal/metrics"
	"internportal/internal/session"
	"internportal/internal/web"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv, "portal")

	locale, err := language.Parse(cfg.DefaultLocale)
	if err != nil {
		logger.Warn().Err(err).Str("locale", cfg.DefaultLocale).Msg("invalid DEFAULT_LOCALE, using en-US")
		locale = language.AmericanEnglish
	}

	resolver, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	defer resolver.Close()

	opts := web.Options{DefaultLocale: locale}
	if resolver != nil {
		opts.RegionLookup = resolver.Region
	}

	gateway := client.New(cfg.APIBaseURL, &http.Client{})
	portal := web.NewPortal(gateway, logger, metrics.New("portal"), session.CookieOptions{
		Path:   "/",
		MaxAge: cfg.SessionMaxAge,
		Secure: cfg.CookieSecure,
	})
	server := infra.NewHTTPServer(cfg, cfg.PortalPort, web.NewRouter(portal, opts))

	go func() {
		logger.Info().Str("addr", server.Addr()).Str("api", cfg.APIBaseURL).Msg("portal listening")
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
