package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sembang-dev/sembang/shared/domain"
	jwt_internal "github.com/sembang-dev/sembang/shared/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeedAuth(t *testing.T) {
	jwtService := jwt_internal.New("secret", time.Hour)
	token, err := jwtService.NewToken(domain.User{Id: "user-123", Username: "dicoding"})
	require.NoError(t, err)
	foreign, err := jwt_internal.New("other", time.Hour).NewToken(domain.User{Id: "user-123"})
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		cookie         *http.Cookie
		expectedStatus int
		expectedUser   *domain.User
		expectedMsg    string
	}{
		{
			name:           "bearer token",
			header:         "Bearer " + token,
			expectedStatus: http.StatusOK,
			expectedUser:   &domain.User{Id: "user-123", Username: "dicoding"},
		},
		{
			name:           "cookie token",
			cookie:         &http.Cookie{Name: AccessTokenCookie, Value: token},
			expectedStatus: http.StatusOK,
			expectedUser:   &domain.User{Id: "user-123", Username: "dicoding"},
		},
		{
			name:           "no token",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Missing authentication",
		},
		{
			name:           "wrong scheme",
			header:         "Basic " + token,
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Missing authentication",
		},
		{
			name:           "signed with another key",
			header:         "Bearer " + foreign,
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "invalid access token",
		},
	}

	auth := NewAuth(jwtService)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser *domain.User
			handler := auth.NeedAuth()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = GetUserFromContext(r)
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodPost, "/threads", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedUser, gotUser)
			if tt.expectedMsg != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, "fail", body["status"])
				assert.Equal(t, tt.expectedMsg, body["message"])
			}
		})
	}
}

func TestGetUserFromContextWithoutAuth(t *testing.T) {
	assert.Nil(t, GetUserFromContext(httptest.NewRequest(http.MethodGet, "/", nil)))
}
