package service

import (
	"context"
	"time"

	"github.com/MKhiriev/site-vault/models"
)

// AuthService implements the registration, login and session-resolution flows.
type AuthService interface {
	// Register creates an account and returns a session token for it.
	Register(ctx context.Context, req models.RegisterRequest) (models.Token, error)

	// Login authenticates req and returns a session token on success.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// CurrentUser resolves the user id of a valid session. An unknown id
	// yields ErrNotLoggedIn, a storage failure ErrSessionTerminated.
	CurrentUser(ctx context.Context, userID int64) (models.User, error)
}

// SiteService implements the site secret flows for an authenticated user.
type SiteService interface {
	ListSites(ctx context.Context, user models.User) (models.SitesOverview, error)
	GetSite(ctx context.Context, user models.User, siteID string) (models.SiteSummary, error)
	AddSite(ctx context.Context, user models.User, req models.AddSiteRequest) (models.SiteSecret, error)
	RevealSite(ctx context.Context, user models.User, req models.RevealSiteRequest) (models.ActionResult, error)
	DeleteSite(ctx context.Context, user models.User, siteID string) error
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SessionIssuer creates session tokens.
type SessionIssuer interface {
	Issue(userID int64) (models.Token, error)
}

// StrengthEstimator rates a password.
type StrengthEstimator interface {
	Estimate(password string) models.StrengthReport
}

// LoginThrottle gates password verification per account.
type LoginThrottle interface {
	Check(user models.User) error
	RegisterFailure(ctx context.Context, userID int64) (bool, error)
	RegisterSuccess(ctx context.Context, user models.User) error
	Lockout() time.Duration
}

// IDGenerator issues identifiers for new site secrets.
type IDGenerator interface {
	Generate() string
}
