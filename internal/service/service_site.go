package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/site-vault/internal/app"
	"github.com/MKhiriev/site-vault/internal/config"
	"github.com/MKhiriev/site-vault/internal/crypto"
	"github.com/MKhiriev/site-vault/internal/logger"
	"github.com/MKhiriev/site-vault/internal/store"
	"github.com/MKhiriev/site-vault/internal/strength"
	"github.com/MKhiriev/site-vault/internal/utils"
	"github.com/MKhiriev/site-vault/internal/validators"
	"github.com/MKhiriev/site-vault/models"
)

// siteService stores and reveals site secrets under the master password.
type siteService struct {
	siteSecretRepository store.SiteSecretRepository

	hasher    crypto.CredentialHasher
	cipher    crypto.EnvelopeCipher
	estimator StrengthEstimator
	validator validators.Validator
	ids       IDGenerator

	logger *logger.Logger
}

// NewSiteService constructs a SiteService over siteSecretRepository.
func NewSiteService(siteSecretRepository store.SiteSecretRepository, cfg config.App, logger *logger.Logger) SiteService {
	return &siteService{
		siteSecretRepository: siteSecretRepository,
		hasher:               crypto.NewCredentialHasher(cfg.HashCost),
		cipher:               crypto.NewEnvelopeCipher(),
		estimator:            strength.NewEstimator(cfg.MinPasswordEntropy),
		validator:            validators.NewCredentialsValidator(),
		ids:                  utils.NewUUIDGenerator(),
		logger:               logger,
	}
}

// ListSites returns the labels and ids of every secret of user.
func (s *siteService) ListSites(ctx context.Context, user models.User) (models.SitesOverview, error) {
	if user.UserID == 0 {
		return models.SitesOverview{}, ErrNotLoggedIn
	}

	secrets, err := s.siteSecretRepository.ListSiteSecrets(ctx, user.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*siteService.ListSites").Msg("listing site secrets failed")
		return models.SitesOverview{}, operationFailed(err, nil)
	}

	overview := models.SitesOverview{Email: user.Email, Sites: make([]models.SiteSummary, 0, len(secrets))}
	for _, secret := range secrets {
		overview.Sites = append(overview.Sites, secret.Summary())
	}
	return overview, nil
}

// GetSite returns one secret summary. Foreign and unknown ids are both
// reported as ErrSiteNotFound.
func (s *siteService) GetSite(ctx context.Context, user models.User, siteID string) (models.SiteSummary, error) {
	secret, err := s.find(ctx, user, siteID, nil)
	if err != nil {
		return models.SiteSummary{}, err
	}
	return secret.Summary(), nil
}

// AddSite encrypts req.Password under the key derived from the master
// password and stores it. The site password must pass the strength check
// and the master password must verify against the stored hash.
func (s *siteService) AddSite(ctx context.Context, user models.User, req models.AddSiteRequest) (models.SiteSecret, error) {
	log := logger.FromContext(ctx)
	fields := req.Fields()

	if user.UserID == 0 {
		return models.SiteSecret{}, newFlowError(app.MsgNotLoggedIn, fields, ErrNotLoggedIn)
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.SiteSecret{}, invalidForm(err, fields)
	}
	if report := s.estimator.Estimate(req.Password); !report.Acceptable {
		return models.SiteSecret{}, newFlowError(fmt.Sprintf(app.MsgPasswordTooWeakFmt, report.Reason), fields, ErrWeakPassword)
	}
	if !s.hasher.Verify(req.MasterPassword, user.MasterPasswordHash) {
		return models.SiteSecret{}, newFlowError(app.MsgIncorrectMasterPassword, fields, ErrIncorrectMasterPassword)
	}

	key := s.hasher.DeriveKeyMaterial(req.MasterPassword)
	sealed, err := s.cipher.Seal([]byte(req.Password), key[:])
	if err != nil {
		log.Err(err).Str("func", "*siteService.AddSite").Msg("encrypting site secret failed")
		return models.SiteSecret{}, newFlowError(app.MsgCouldNotAddEntry, fields, fmt.Errorf("%w: %w", ErrCouldNotAddEntry, err))
	}

	secret, err := s.siteSecretRepository.CreateSiteSecret(ctx, models.SiteSecret{
		ID:                s.ids.Generate(),
		UserID:            user.UserID,
		Website:           req.Website,
		EncryptedPassword: sealed,
	})
	if err != nil {
		log.Err(err).Str("func", "*siteService.AddSite").Msg("storing site secret failed")
		return models.SiteSecret{}, newFlowError(app.MsgCouldNotAddEntry, fields, fmt.Errorf("%w: %w", ErrCouldNotAddEntry, err))
	}

	log.Info().Str("site_id", secret.ID).Msg("site secret added")
	return secret, nil
}

// RevealSite decrypts one secret of user. The plaintext is returned only in
// the result and is never stored or logged.
//
// TODO: failed master password attempts are not throttled here; add a
// per-account counter similar to the login throttle once the policy is agreed.
func (s *siteService) RevealSite(ctx context.Context, user models.User, req models.RevealSiteRequest) (models.ActionResult, error) {
	fields := req.Fields()

	if user.UserID == 0 {
		return models.ActionResult{}, newFlowError(app.MsgNotLoggedIn, fields, ErrNotLoggedIn)
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ActionResult{}, invalidForm(err, fields)
	}

	secret, err := s.find(ctx, user, req.SiteID, fields)
	if err != nil {
		return models.ActionResult{}, err
	}

	if !s.hasher.Verify(req.MasterPassword, user.MasterPasswordHash) {
		return models.ActionResult{}, newFlowError(app.MsgIncorrectMasterPassword, fields, ErrIncorrectMasterPassword)
	}

	key := s.hasher.DeriveKeyMaterial(req.MasterPassword)
	plaintext, err := s.cipher.Open(secret.EncryptedPassword, key[:])
	if err != nil {
		logger.FromContext(ctx).Warn().Str("func", "*siteService.RevealSite").Str("site_id", secret.ID).Msg("site secret could not be decrypted")
		return models.ActionResult{}, newFlowError(app.MsgDecryptionFailed, fields, ErrDecryptionFailed)
	}

	return models.ActionResult{Password: string(plaintext)}, nil
}

// DeleteSite removes one secret of user. A session is sufficient; the
// master password is not asked for.
func (s *siteService) DeleteSite(ctx context.Context, user models.User, siteID string) error {
	if user.UserID == 0 {
		return newFlowError(app.MsgNotLoggedIn, nil, ErrNotLoggedIn)
	}
	if !utils.IsUUID(siteID) {
		return newFlowError(app.MsgSiteNotFound, nil, ErrSiteNotFound)
	}

	err := s.siteSecretRepository.DeleteSiteSecret(ctx, user.UserID, siteID)
	if errors.Is(err, store.ErrSiteSecretNotFound) {
		return newFlowError(app.MsgSiteNotFound, nil, ErrSiteNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*siteService.DeleteSite").Msg("deleting site secret failed")
		return operationFailed(err, nil)
	}

	logger.FromContext(ctx).Info().Str("site_id", siteID).Msg("site secret deleted")
	return nil
}

// find loads a secret owned by user. Ids that are not UUIDs never reach the
// store.
func (s *siteService) find(ctx context.Context, user models.User, siteID string, fields map[string]string) (models.SiteSecret, error) {
	if user.UserID == 0 {
		return models.SiteSecret{}, newFlowError(app.MsgNotLoggedIn, fields, ErrNotLoggedIn)
	}
	if !utils.IsUUID(siteID) {
		return models.SiteSecret{}, newFlowError(app.MsgSiteNotFound, fields, ErrSiteNotFound)
	}

	secret, err := s.siteSecretRepository.FindSiteSecret(ctx, user.UserID, siteID)
	if errors.Is(err, store.ErrSiteSecretNotFound) {
		return models.SiteSecret{}, newFlowError(app.MsgSiteNotFound, fields, ErrSiteNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*siteService.find").Msg("loading site secret failed")
		return models.SiteSecret{}, operationFailed(err, fields)
	}
	return secret, nil
}
