package handler

import (
	"github.com/MKhiriev/site-vault/internal/config"
	"github.com/MKhiriev/site-vault/internal/handler/http"
	"github.com/MKhiriev/site-vault/internal/logger"
	"github.com/MKhiriev/site-vault/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions http.SessionCookies, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, sessions, cfg, logger)}, nil
}
