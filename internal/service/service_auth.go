package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/site-vault/internal/app"
	"github.com/MKhiriev/site-vault/internal/config"
	"github.com/MKhiriev/site-vault/internal/crypto"
	"github.com/MKhiriev/site-vault/internal/logger"
	"github.com/MKhiriev/site-vault/internal/store"
	"github.com/MKhiriev/site-vault/internal/strength"
	"github.com/MKhiriev/site-vault/internal/throttle"
	"github.com/MKhiriev/site-vault/internal/utils"
	"github.com/MKhiriev/site-vault/internal/validators"
	"github.com/MKhiriev/site-vault/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher    crypto.CredentialHasher
	estimator StrengthEstimator
	throttle  LoginThrottle
	sessions  SessionIssuer
	validator validators.Validator

	// loginDelay is waited before every login, even a malformed one.
	loginDelay time.Duration
	wait       func(ctx context.Context, d time.Duration) error

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over userRepository. The hasher,
// throttle and strength estimator are built from cfg.
func NewAuthService(userRepository store.UserRepository, sessions SessionIssuer, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         crypto.NewCredentialHasher(cfg.HashCost),
		estimator:      strength.NewEstimator(cfg.MinPasswordEntropy),
		throttle:       throttle.New(userRepository, cfg.MaxLoginAttempts, cfg.LockoutDuration),
		sessions:       sessions,
		validator:      validators.NewCredentialsValidator(),
		loginDelay:     cfg.LoginDelay,
		wait:           utils.SleepContext,
		logger:         logger,
	}
}

// Register creates a new account.
//
// Checks run in order: form shape, email availability, account password
// strength, master password strength. The first failure is returned as a
// *FlowError. A duplicate detected by the insert itself is reported the
// same way as one found by the lookup.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.Token, error) {
	log := logger.FromContext(ctx)
	fields := req.Fields()

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Register").Msg("invalid registration form")
		return models.Token{}, invalidForm(err, fields)
	}

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return models.Token{}, newFlowError(app.MsgEmailInUse, fields, ErrEmailInUse)
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*authService.Register").Msg("email lookup failed")
		return models.Token{}, operationFailed(err, fields)
	}

	if report := a.estimator.Estimate(req.Password); !report.Acceptable {
		return models.Token{}, newFlowError(fmt.Sprintf(app.MsgPasswordTooWeakFmt, report.Reason), fields, ErrWeakPassword)
	}
	if report := a.estimator.Estimate(req.MasterPassword); !report.Acceptable {
		return models.Token{}, newFlowError(fmt.Sprintf(app.MsgMasterPasswordTooWeakFmt, report.Reason), fields, ErrWeakPassword)
	}

	passwordHash, err := a.hasher.HashForStorage(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("hashing password failed")
		return models.Token{}, operationFailed(err, fields)
	}
	masterPasswordHash, err := a.hasher.HashForStorage(req.MasterPassword)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("hashing master password failed")
		return models.Token{}, operationFailed(err, fields)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:              req.Email,
		PasswordHash:       passwordHash,
		MasterPasswordHash: masterPasswordHash,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.Token{}, newFlowError(app.MsgEmailInUse, fields, ErrEmailInUse)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.Token{}, operationFailed(err, fields)
	}

	token, err := a.issue(ctx, user.UserID)
	if err != nil {
		return models.Token{}, operationFailed(err, fields)
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")
	return token, nil
}

// Login authenticates an existing user.
//
// The configured delay is waited first, unconditionally. A locked account is
// rejected before the password hash is computed. Unknown emails and wrong
// passwords share one message so that accounts cannot be enumerated.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)
	fields := req.Fields()

	if err := a.wait(ctx, a.loginDelay); err != nil {
		return models.Token{}, err
	}

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Token{}, invalidForm(err, fields)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Token{}, newFlowError(app.MsgIncorrectCredentials, fields, ErrInvalidCredentials)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.Token{}, operationFailed(err, fields)
	}

	if err = a.throttle.Check(user); err != nil {
		log.Info().Int64("user_id", user.UserID).Msg("login attempt on locked account")
		return models.Token{}, newFlowError(app.MsgLoginLocked, fields, fmt.Errorf("%w: %w", ErrLoginLocked, err))
	}

	if !a.hasher.Verify(req.Password, user.PasswordHash) {
		locked, err := a.throttle.RegisterFailure(ctx, user.UserID)
		if err != nil {
			return models.Token{}, operationFailed(err, fields)
		}
		if locked {
			minutes := int(a.throttle.Lockout() / time.Minute)
			return models.Token{}, newFlowError(fmt.Sprintf(app.MsgLoginJustLockedFmt, minutes), fields, ErrLoginLocked)
		}
		return models.Token{}, newFlowError(app.MsgIncorrectCredentials, fields, ErrInvalidCredentials)
	}

	if err = a.throttle.RegisterSuccess(ctx, user); err != nil {
		return models.Token{}, operationFailed(err, fields)
	}

	token, err := a.issue(ctx, user.UserID)
	if err != nil {
		return models.Token{}, operationFailed(err, fields)
	}

	log.Info().Int64("user_id", user.UserID).Msg("user logged in")
	return token, nil
}

// CurrentUser loads the account behind a session.
func (a *authService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrNotLoggedIn
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CurrentUser").Int64("user_id", userID).Msg("reading session user failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrSessionTerminated, err)
	}
	return user, nil
}

func (a *authService) issue(ctx context.Context, userID int64) (models.Token, error) {
	token, err := a.sessions.Issue(userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.issue").Int64("user_id", userID).Msg("issuing session failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}
