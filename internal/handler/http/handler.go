package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/site-vault/internal/config"
	"github.com/MKhiriev/site-vault/internal/logger"
	"github.com/MKhiriev/site-vault/internal/service"
	"github.com/MKhiriev/site-vault/models"
)

// SessionCookies moves session tokens between the service layer and the
// browser cookie.
type SessionCookies interface {
	Cookie(token models.Token) *http.Cookie
	Revoke() *http.Cookie
	FromRequest(r *http.Request) (int64, bool)
}

type Handler struct {
	services *service.Services
	sessions SessionCookies

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions SessionCookies, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessions,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
