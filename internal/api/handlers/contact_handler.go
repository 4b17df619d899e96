package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/stardental/clinic-backend/internal/infrastructure/observability"
)

// ContactHandler handles contact form submissions. Messages are recorded
// in the log only; the clinic reads them from there, nothing is persisted.
type ContactHandler struct{}

// NewContactHandler creates a new contact handler
func NewContactHandler() *ContactHandler {
	return &ContactHandler{}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var payload contactRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	payload.Email = strings.TrimSpace(payload.Email)
	payload.Message = strings.TrimSpace(payload.Message)

	if payload.Name == "" || payload.Email == "" || payload.Message == "" {
		respondWithError(w, http.StatusBadRequest, "name, email and message are required")
		return
	}
	if len(payload.Message) > 5000 {
		respondWithError(w, http.StatusBadRequest, "message is too long")
		return
	}

	observability.LoggerFromContext(r.Context()).Info().
		Str("name", payload.Name).
		Str("email", payload.Email).
		Str("phone", payload.Phone).
		Str("subject", payload.Subject).
		Str("message", payload.Message).
		Msg("contact form submission")

	respondWithJSON(w, http.StatusAccepted, map[string]string{
		"status": "received",
	})
}
