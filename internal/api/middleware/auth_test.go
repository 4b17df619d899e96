package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stardental/clinic-backend/internal/api/middleware"
	"github.com/stardental/clinic-backend/internal/application/services"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func protected(t *testing.T) (http.Handler, *bool) {
	t.Helper()
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	return middleware.AuthMiddleware(testSecret)(next), &called
}

func signToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := services.Claims{
		Email: "admin@stardental.co.ug",
		Role:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("rejects a request without a token", func(t *testing.T) {
		handler, called := protected(t)

		req := httptest.NewRequest("GET", "/api/admin/appointments", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *called)
	})

	t.Run("rejects a non-bearer authorization header", func(t *testing.T) {
		handler, called := protected(t)

		req := httptest.NewRequest("GET", "/api/admin/appointments", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwdw==")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *called)
	})

	t.Run("rejects a token signed with the wrong secret", func(t *testing.T) {
		handler, called := protected(t)

		token := signToken(t, "other-secret", time.Now().Add(time.Hour))
		req := httptest.NewRequest("GET", "/api/admin/appointments", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *called)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		handler, called := protected(t)

		token := signToken(t, testSecret, time.Now().Add(-time.Minute))
		req := httptest.NewRequest("GET", "/api/admin/appointments", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *called)
	})

	t.Run("passes a valid token through", func(t *testing.T) {
		handler, called := protected(t)

		token := signToken(t, testSecret, time.Now().Add(time.Hour))
		req := httptest.NewRequest("GET", "/api/admin/appointments", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, *called)
	})
}
