package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/site-vault/internal/logger"
	"github.com/MKhiriev/site-vault/models"
)

// siteSecretRepository is the SQL implementation of [SiteSecretRepository]
// over the "site_secrets" table.
type siteSecretRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSiteSecretRepository constructs a [SiteSecretRepository] backed by db.
func NewSiteSecretRepository(db *DB, logger *logger.Logger) SiteSecretRepository {
	logger.Debug().Msg("creating site secret repository")
	return &siteSecretRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSiteSecret inserts secret as given. The caller assigns the id.
func (r *siteSecretRepository) CreateSiteSecret(ctx context.Context, secret models.SiteSecret) (models.SiteSecret, error) {
	log := logger.FromContext(ctx)

	if secret.CreatedAt.IsZero() {
		secret.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildCreateSiteSecretQuery(r.db.builder(), secret)
	if err != nil {
		log.Err(err).Str("func", "*siteSecretRepository.CreateSiteSecret").Msg("error building query")
		return models.SiteSecret{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*siteSecretRepository.CreateSiteSecret").Msg("error inserting site secret")
		return models.SiteSecret{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return secret, nil
}

// ListSiteSecrets returns every secret owned by userID, oldest first.
func (r *siteSecretRepository) ListSiteSecrets(ctx context.Context, userID int64) ([]models.SiteSecret, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSiteSecretsQuery(r.db.builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*siteSecretRepository.ListSiteSecrets").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*siteSecretRepository.ListSiteSecrets").Msg("error querying site secrets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	secrets := make([]models.SiteSecret, 0)
	for rows.Next() {
		secret, err := scanSiteSecret(rows)
		if err != nil {
			log.Err(err).Str("func", "*siteSecretRepository.ListSiteSecrets").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		secrets = append(secrets, secret)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*siteSecretRepository.ListSiteSecrets").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return secrets, nil
}

// FindSiteSecret returns ErrSiteSecretNotFound unless id exists and belongs
// to userID.
func (r *siteSecretRepository) FindSiteSecret(ctx context.Context, userID int64, id string) (models.SiteSecret, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindSiteSecretQuery(r.db.builder(), userID, id)
	if err != nil {
		log.Err(err).Str("func", "*siteSecretRepository.FindSiteSecret").Msg("error building query")
		return models.SiteSecret{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*siteSecretRepository.FindSiteSecret").Msg("error querying site secret")
		return models.SiteSecret{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	secret, err := scanSiteSecret(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SiteSecret{}, ErrSiteSecretNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*siteSecretRepository.FindSiteSecret").Msg("error: scanning error")
		return models.SiteSecret{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return secret, nil
}

// DeleteSiteSecret removes the secret. Zero affected rows means the id is
// unknown or foreign and yields ErrSiteSecretNotFound.
func (r *siteSecretRepository) DeleteSiteSecret(ctx context.Context, userID int64, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSiteSecretQuery(r.db.builder(), userID, id)
	if err != nil {
		log.Err(err).Str("func", "*siteSecretRepository.DeleteSiteSecret").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*siteSecretRepository.DeleteSiteSecret").Msg("error deleting site secret")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrSiteSecretNotFound
	}

	log.Debug().Str("func", "*siteSecretRepository.DeleteSiteSecret").Str("id", id).Msg("site secret deleted")
	return nil
}

func scanSiteSecret(row rowScanner) (models.SiteSecret, error) {
	var (
		secret  models.SiteSecret
		created dbTime
	)
	err := row.Scan(
		&secret.ID,
		&secret.UserID,
		&secret.Website,
		&secret.EncryptedPassword,
		&created,
	)
	secret.CreatedAt = created.Time
	return secret, err
}
