package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/site-vault/internal/service"
	"github.com/MKhiriev/site-vault/internal/session"
	"github.com/MKhiriev/site-vault/internal/utils"
	"github.com/MKhiriev/site-vault/models"
)

func TestRequireUser(t *testing.T) {
	tests := []struct {
		name           string
		withCookie     bool
		rawCookie      string
		currentUserErr error
		wantNext       bool
		wantLocation   string
		wantRevoked    bool
	}{
		{
			name:       "valid session",
			withCookie: true,
			wantNext:   true,
		},
		{
			name:         "no cookie",
			wantLocation: "/login?redirect=%2Fsites%3Fpage%3D2",
		},
		{
			name:         "tampered cookie",
			rawCookie:    "not-a-token",
			wantLocation: "/login?redirect=%2Fsites%3Fpage%3D2",
		},
		{
			name:           "user no longer exists",
			withCookie:     true,
			currentUserErr: service.ErrNotLoggedIn,
			wantLocation:   "/login?redirect=%2Fsites%3Fpage%3D2",
		},
		{
			name:           "user cannot be read",
			withCookie:     true,
			currentUserErr: errors.Join(service.ErrSessionTerminated, errors.New("connection reset")),
			wantLocation:   "/login",
			wantRevoked:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				currentUserFn: func(_ context.Context, userID int64) (models.User, error) {
					if tt.currentUserErr != nil {
						return models.User{}, tt.currentUserErr
					}
					return models.User{UserID: userID, Email: testEmail}, nil
				},
			}
			h, sessions := newTestHandler(t, auth, nil)

			var gotUser models.User
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUser, _ = utils.GetUserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/sites?page=2", nil)
			if tt.withCookie {
				req = withSession(t, req, sessions, testUserID)
			}
			if tt.rawCookie != "" {
				req.AddCookie(&http.Cookie{Name: session.DefaultCookieName, Value: tt.rawCookie})
			}
			rec := httptest.NewRecorder()

			h.requireUser(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantNext {
				require.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, testUserID, gotUser.UserID)
				assert.Equal(t, testEmail, gotUser.Email)
				return
			}

			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))

			cookie := responseCookie(rec, session.DefaultCookieName)
			if tt.wantRevoked {
				require.NotNil(t, cookie)
				assert.Empty(t, cookie.Value)
			} else {
				assert.Nil(t, cookie)
			}
		})
	}
}
