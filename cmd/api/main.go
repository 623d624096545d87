package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"server/internal/backend"
	"server/internal/http/handlers"
	"server/internal/http/httpapi"
	"server/internal/infra"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	client, err := backend.NewClient(backend.Options{
		BaseURL:            cfg.BackendBaseURL,
		AnonKey:            cfg.BackendAnonKey,
		CreateVolunteerURL: cfg.CreateVolunteerURL,
		EmailLinkURL:       cfg.EmailLinkURL,
		UpdateInterestsURL: cfg.UpdateInterestsURL,
		UpdateVolunteerURL: cfg.UpdateVolunteerURL,
		InterestsURL:       cfg.InterestsURL,
		RequestTimeout:     cfg.BackendTimeout,
		Logger:             &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure backend client")
	}

	app := handlers.NewApp(client, cfg, logger)
	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
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
