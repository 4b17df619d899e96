package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

// AuthService defines the auth operations used by the handler
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles admin login
type AuthHandler struct {
	service AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	token, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		respondWithServiceError(w, r, err, "failed to log in")
		return
	}

	respondWithJSON(w, http.StatusOK, loginResponse{
		Token:     token,
		TokenType: "Bearer",
	})
}
