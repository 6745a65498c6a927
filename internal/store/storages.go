package store

import "github.com/MKhiriev/site-vault/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository       UserRepository
	SiteSecretRepository SiteSecretRepository
}

// NewStorages builds every repository over db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		SiteSecretRepository: NewSiteSecretRepository(db, log),
	}
}
