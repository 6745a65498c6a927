package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/site-vault/internal/config"
	"github.com/MKhiriev/site-vault/internal/handler"
	"github.com/MKhiriev/site-vault/internal/logger"
	"github.com/MKhiriev/site-vault/internal/server"
	"github.com/MKhiriev/site-vault/internal/service"
	"github.com/MKhiriev/site-vault/internal/session"
	"github.com/MKhiriev/site-vault/internal/store"
	"github.com/MKhiriev/site-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("site-vault-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == config.DefaultVersion && buildVersion != "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	sessions, err := session.NewManager(session.Config{
		Secret:     cfg.App.SessionSecret,
		Issuer:     cfg.App.SessionIssuer,
		Duration:   cfg.App.SessionDuration,
		CookieName: cfg.App.SessionCookie,
		Insecure:   cfg.App.InsecureCookie,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session manager")
	}

	services, err := service.NewServices(store.NewStorages(db, log), sessions, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, sessions, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
