package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminAuthMiddleware_RequiresConfiguration(t *testing.T) {
	_, err := AdminAuthMiddleware(AdminAuthConfig{})
	assert.Error(t, err)
}

func TestAdminAuthMiddleware_SharedToken(t *testing.T) {
	mw, err := AdminAuthMiddleware(AdminAuthConfig{Token: "s3cret"})
	require.NoError(t, err)
	handler := mw(okHandler())

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"valid token", "s3cret", http.StatusOK},
		{"wrong token", "nope", http.StatusUnauthorized},
		{"missing token", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/seed", nil)
			if tt.token != "" {
				req.Header.Set("X-Admin-Token", tt.token)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAdminAuthMiddleware_JWT(t *testing.T) {
	mw, err := AdminAuthMiddleware(AdminAuthConfig{JWTSecret: "jwt-secret"})
	require.NoError(t, err)

	var captured AuthContext
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = AuthFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	t.Run("admin role accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/seed", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "jwt-secret", jwt.MapClaims{
			"sub": "ops", "role": "admin", "exp": exp,
		}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ops", captured.Subject)
		assert.Equal(t, "jwt", captured.Method)
	})

	t.Run("non-admin role rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/seed", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "jwt-secret", jwt.MapClaims{
			"sub": "viewer", "role": "reader", "exp": exp,
		}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong signature rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/seed", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", jwt.MapClaims{
			"sub": "ops", "role": "admin", "exp": exp,
		}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/seed", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "jwt-secret", jwt.MapClaims{
			"sub": "ops", "role": "admin", "exp": jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminAuthMiddleware_EitherMethodAccepted(t *testing.T) {
	mw, err := AdminAuthMiddleware(AdminAuthConfig{Token: "s3cret", JWTSecret: "jwt-secret"})
	require.NoError(t, err)
	handler := mw(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/admin/seed", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "jwt-secret", jwt.MapClaims{
		"sub": "ops", "role": "admin", "exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
