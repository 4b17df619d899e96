package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stardental/clinic-backend/internal/api/handlers"
	apperrors "github.com/stardental/clinic-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct {
	token string
	err   error
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.token, s.err
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns a bearer token", func(t *testing.T) {
		handler := handlers.NewAuthHandler(&stubAuthService{token: "signed.jwt.token"})

		body := `{"email":"admin@stardental.co.ug","password":"pw"}`
		req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Token     string `json:"token"`
			TokenType string `json:"token_type"`
		}
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, "signed.jwt.token", response.Token)
		assert.Equal(t, "Bearer", response.TokenType)
	})

	t.Run("returns 401 on a bad credential", func(t *testing.T) {
		handler := handlers.NewAuthHandler(&stubAuthService{
			err: apperrors.NewUnauthorizedError("invalid credentials"),
		})

		body := `{"email":"admin@stardental.co.ug","password":"wrong"}`
		req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
