package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stardental/clinic-backend/internal/domain/entities"
	"github.com/stardental/clinic-backend/internal/infrastructure/observability"
)

// AppointmentService defines the appointment operations used by the handler
type AppointmentService interface {
	Book(ctx context.Context, appointment *entities.Appointment) error
	List(ctx context.Context, status entities.AppointmentStatus) ([]*entities.Appointment, error)
	ListRecent(ctx context.Context, n int) ([]*entities.Appointment, error)
	GetByID(ctx context.Context, id string) (*entities.Appointment, error)
	UpdateStatus(ctx context.Context, id string, next entities.AppointmentStatus) error
}

// AppointmentHandler handles appointment requests
type AppointmentHandler struct {
	service AppointmentService
	metrics *observability.Metrics
}

// NewAppointmentHandler creates a new appointment handler. The metrics
// argument may be nil when metrics are disabled.
func NewAppointmentHandler(service AppointmentService, metrics *observability.Metrics) *AppointmentHandler {
	return &AppointmentHandler{
		service: service,
		metrics: metrics,
	}
}

// Book handles POST /api/appointments
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	var appointment entities.Appointment
	if err := json.NewDecoder(r.Body).Decode(&appointment); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.Book(r.Context(), &appointment); err != nil {
		respondWithServiceError(w, r, err, "failed to book appointment")
		return
	}

	if h.metrics != nil {
		observability.RecordBooking(r.Context(), h.metrics, appointment.Service)
	}

	respondWithJSON(w, http.StatusCreated, appointment)
}

// List handles GET /api/admin/appointments
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	status := entities.AppointmentStatus(r.URL.Query().Get("status"))

	appointments, err := h.service.List(r.Context(), status)
	if err != nil {
		respondWithServiceError(w, r, err, "failed to list appointments")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// Get handles GET /api/admin/appointments/{id}
func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "appointment ID is required")
		return
	}

	appointment, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err, "failed to get appointment")
		return
	}

	respondWithJSON(w, http.StatusOK, appointment)
}

type statusUpdateRequest struct {
	Status entities.AppointmentStatus `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/appointments/{id}/status
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "appointment ID is required")
		return
	}

	var payload statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, payload.Status); err != nil {
		respondWithServiceError(w, r, err, "failed to update appointment")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"id":     id,
		"status": string(payload.Status),
	})
}
