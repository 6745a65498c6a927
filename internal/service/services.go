package service

import (
	"github.com/MKhiriev/site-vault/internal/config"
	"github.com/MKhiriev/site-vault/internal/logger"
	"github.com/MKhiriev/site-vault/internal/store"
)

type Services struct {
	AuthService    AuthService
	SiteService    SiteService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, sessions SessionIssuer, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, sessions, cfg, logger),
		SiteService:    NewSiteService(storages.SiteSecretRepository, cfg, logger),
		AppInfoService: appInfoService,
	}, nil
}
