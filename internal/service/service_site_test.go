package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/site-vault/internal/app"
	"github.com/MKhiriev/site-vault/internal/crypto"
	"github.com/MKhiriev/site-vault/internal/logger"
	"github.com/MKhiriev/site-vault/internal/mock"
	"github.com/MKhiriev/site-vault/internal/store"
	"github.com/MKhiriev/site-vault/internal/utils"
	"github.com/MKhiriev/site-vault/models"
)

const sitePassword = "p@ssW0rd!"

func newTestSiteSvc(t *testing.T, ctrl *gomock.Controller) (*siteService, *mock.MockSiteSecretRepository) {
	t.Helper()
	secrets := mock.NewMockSiteSecretRepository(ctrl)
	return NewSiteService(secrets, testAppConfig(), logger.Nop()).(*siteService), secrets
}

func testOwner(t *testing.T) models.User {
	return models.User{UserID: 1, Email: "alice@example.com", MasterPasswordHash: hashed(t, aliceMaster)}
}

func sealFor(t *testing.T, master, plaintext string) string {
	t.Helper()
	key := crypto.NewCredentialHasher(4).DeriveKeyMaterial(master)
	sealed, err := crypto.NewEnvelopeCipher().Seal([]byte(plaintext), key[:])
	require.NoError(t, err)
	return sealed
}

// ── AddSite ──────────────────────────────────────────────────────────────────

func TestSiteService_AddSite_StoresCiphertext(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, secrets := newTestSiteSvc(t, ctrl)
	owner := testOwner(t)

	var stored models.SiteSecret
	secrets.EXPECT().CreateSiteSecret(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.SiteSecret) (models.SiteSecret, error) {
			stored = s
			return s, nil
		},
	)

	got, err := svc.AddSite(context.Background(), owner, models.AddSiteRequest{
		Website:        "example.com",
		Password:       sitePassword,
		MasterPassword: aliceMaster,
	})
	require.NoError(t, err)

	assert.True(t, utils.IsUUID(got.ID))
	assert.Equal(t, owner.UserID, stored.UserID)
	assert.Equal(t, "example.com", stored.Website)
	assert.NotContains(t, stored.EncryptedPassword, sitePassword)
	assert.Equal(t, strings.ToLower(stored.EncryptedPassword), stored.EncryptedPassword)
	assert.Greater(t, len(stored.EncryptedPassword), crypto.NonceHexLen)

	key := crypto.NewCredentialHasher(4).DeriveKeyMaterial(aliceMaster)
	plaintext, err := crypto.NewEnvelopeCipher().Open(stored.EncryptedPassword, key[:])
	require.NoError(t, err)
	assert.Equal(t, sitePassword, string(plaintext))
}

func TestSiteService_AddSite_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		user    func(t *testing.T) models.User
		req     models.AddSiteRequest
		message string
		target  error
	}{
		{
			name:    "not logged in",
			user:    func(*testing.T) models.User { return models.User{} },
			req:     models.AddSiteRequest{Website: "a.com", Password: sitePassword, MasterPassword: aliceMaster},
			message: app.MsgNotLoggedIn,
			target:  ErrNotLoggedIn,
		},
		{
			name:    "missing website",
			user:    testOwner,
			req:     models.AddSiteRequest{Password: sitePassword, MasterPassword: aliceMaster},
			message: app.MsgIncorrectFormSubmission,
			target:  ErrInvalidForm,
		},
		{
			name:    "wrong master password",
			user:    testOwner,
			req:     models.AddSiteRequest{Website: "a.com", Password: sitePassword, MasterPassword: "not-the-master"},
			message: app.MsgIncorrectMasterPassword,
			target:  ErrIncorrectMasterPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestSiteSvc(t, ctrl)

			_, err := svc.AddSite(context.Background(), tt.user(t), tt.req)
			requireFlowError(t, err, tt.message, tt.target)
		})
	}
}

func TestSiteService_AddSite_WeakSitePasswordCheckedBeforeMaster(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestSiteSvc(t, ctrl)

	_, err := svc.AddSite(context.Background(), testOwner(t), models.AddSiteRequest{
		Website:        "a.com",
		Password:       "abc",
		MasterPassword: "wrong",
	})
	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.True(t, strings.HasPrefix(flowErr.Message, "Password too weak: "))
}

func TestSiteService_AddSite_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, secrets := newTestSiteSvc(t, ctrl)

	secrets.EXPECT().CreateSiteSecret(gomock.Any(), gomock.Any()).Return(models.SiteSecret{}, errors.New("disk full"))

	_, err := svc.AddSite(context.Background(), testOwner(t), models.AddSiteRequest{
		Website: "a.com", Password: sitePassword, MasterPassword: aliceMaster,
	})
	requireFlowError(t, err, app.MsgCouldNotAddEntry, ErrCouldNotAddEntry)
}

func TestSiteService_AddSite_EncryptionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestSiteSvc(t, ctrl)

	cipher := mock.NewMockEnvelopeCipher(ctrl)
	cipher.EXPECT().Seal([]byte(sitePassword), gomock.Any()).Return("", crypto.ErrNonceGeneration)
	svc.cipher = cipher

	_, err := svc.AddSite(context.Background(), testOwner(t), models.AddSiteRequest{
		Website: "a.com", Password: sitePassword, MasterPassword: aliceMaster,
	})
	requireFlowError(t, err, app.MsgCouldNotAddEntry, crypto.ErrNonceGeneration)
}

// ── RevealSite ───────────────────────────────────────────────────────────────

func TestSiteService_RevealSite(t *testing.T) {
	owner := testOwner(t)
	siteID := utils.NewUUIDGenerator().Generate()
	secret := models.SiteSecret{ID: siteID, UserID: owner.UserID, Website: "example.com", EncryptedPassword: sealFor(t, aliceMaster, sitePassword)}

	t.Run("correct master password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, secrets := newTestSiteSvc(t, ctrl)
		secrets.EXPECT().FindSiteSecret(gomock.Any(), owner.UserID, siteID).Return(secret, nil)

		result, err := svc.RevealSite(context.Background(), owner, models.RevealSiteRequest{SiteID: siteID, MasterPassword: aliceMaster})
		require.NoError(t, err)
		assert.Equal(t, models.ActionResult{Password: sitePassword}, result)
	})

	t.Run("wrong master password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, secrets := newTestSiteSvc(t, ctrl)
		secrets.EXPECT().FindSiteSecret(gomock.Any(), owner.UserID, siteID).Return(secret, nil)

		result, err := svc.RevealSite(context.Background(), owner, models.RevealSiteRequest{SiteID: siteID, MasterPassword: "guess"})
		requireFlowError(t, err, app.MsgIncorrectMasterPassword, ErrIncorrectMasterPassword)
		assert.Empty(t, result.Password)
	})

	t.Run("foreign secret looks missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, secrets := newTestSiteSvc(t, ctrl)
		intruder := models.User{UserID: 2, MasterPasswordHash: owner.MasterPasswordHash}
		secrets.EXPECT().FindSiteSecret(gomock.Any(), int64(2), siteID).Return(models.SiteSecret{}, store.ErrSiteSecretNotFound)

		_, err := svc.RevealSite(context.Background(), intruder, models.RevealSiteRequest{SiteID: siteID, MasterPassword: aliceMaster})
		requireFlowError(t, err, app.MsgSiteNotFound, ErrSiteNotFound)
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _ := newTestSiteSvc(t, ctrl)

		_, err := svc.RevealSite(context.Background(), owner, models.RevealSiteRequest{SiteID: "1 OR 1=1", MasterPassword: aliceMaster})
		requireFlowError(t, err, app.MsgSiteNotFound, ErrSiteNotFound)
	})

	t.Run("corrupt ciphertext", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, secrets := newTestSiteSvc(t, ctrl)
		corrupt := secret
		corrupt.EncryptedPassword = secret.EncryptedPassword[:crypto.NonceHexLen] + "00ff"
		secrets.EXPECT().FindSiteSecret(gomock.Any(), owner.UserID, siteID).Return(corrupt, nil)

		_, err := svc.RevealSite(context.Background(), owner, models.RevealSiteRequest{SiteID: siteID, MasterPassword: aliceMaster})
		requireFlowError(t, err, app.MsgDecryptionFailed, ErrDecryptionFailed)
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, secrets := newTestSiteSvc(t, ctrl)
		secrets.EXPECT().FindSiteSecret(gomock.Any(), owner.UserID, siteID).Return(models.SiteSecret{}, errors.New("timeout"))

		_, err := svc.RevealSite(context.Background(), owner, models.RevealSiteRequest{SiteID: siteID, MasterPassword: aliceMaster})
		requireFlowError(t, err, app.MsgOperationFailed, ErrStorage)
	})
}

// ── List / Get / Delete ──────────────────────────────────────────────────────

func TestSiteService_ListSites(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, secrets := newTestSiteSvc(t, ctrl)
	owner := testOwner(t)

	secrets.EXPECT().ListSiteSecrets(gomock.Any(), owner.UserID).Return([]models.SiteSecret{
		{ID: "a", Website: "a.com", EncryptedPassword: "secret-a"},
		{ID: "b", Website: "b.com", EncryptedPassword: "secret-b"},
	}, nil)

	overview, err := svc.ListSites(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, models.SitesOverview{
		Email: owner.Email,
		Sites: []models.SiteSummary{{ID: "a", Website: "a.com"}, {ID: "b", Website: "b.com"}},
	}, overview)
}

func TestSiteService_ListSites_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, secrets := newTestSiteSvc(t, ctrl)

	secrets.EXPECT().ListSiteSecrets(gomock.Any(), int64(1)).Return(nil, nil)

	overview, err := svc.ListSites(context.Background(), testOwner(t))
	require.NoError(t, err)
	assert.NotNil(t, overview.Sites)
	assert.Empty(t, overview.Sites)
}

func TestSiteService_GetSite(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, secrets := newTestSiteSvc(t, ctrl)
	siteID := utils.NewUUIDGenerator().Generate()

	secrets.EXPECT().FindSiteSecret(gomock.Any(), int64(1), siteID).
		Return(models.SiteSecret{ID: siteID, UserID: 1, Website: "a.com", EncryptedPassword: "x"}, nil)

	summary, err := svc.GetSite(context.Background(), testOwner(t), siteID)
	require.NoError(t, err)
	assert.Equal(t, models.SiteSummary{ID: siteID, Website: "a.com"}, summary)
}

func TestSiteService_DeleteSite(t *testing.T) {
	siteID := utils.NewUUIDGenerator().Generate()

	tests := []struct {
		name    string
		repoErr error
		message string
		target  error
	}{
		{name: "deleted"},
		{name: "foreign or unknown", repoErr: store.ErrSiteSecretNotFound, message: app.MsgSiteNotFound, target: ErrSiteNotFound},
		{name: "storage failure", repoErr: errors.New("locked"), message: app.MsgOperationFailed, target: ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, secrets := newTestSiteSvc(t, ctrl)
			secrets.EXPECT().DeleteSiteSecret(gomock.Any(), int64(1), siteID).Return(tt.repoErr)

			err := svc.DeleteSite(context.Background(), testOwner(t), siteID)
			if tt.target == nil {
				require.NoError(t, err)
				return
			}
			requireFlowError(t, err, tt.message, tt.target)
		})
	}
}

func TestSiteService_DeleteSite_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestSiteSvc(t, ctrl)

	err := svc.DeleteSite(context.Background(), models.User{}, utils.NewUUIDGenerator().Generate())
	requireFlowError(t, err, app.MsgNotLoggedIn, ErrNotLoggedIn)
}
