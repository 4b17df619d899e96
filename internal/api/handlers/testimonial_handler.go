package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stardental/clinic-backend/internal/domain/entities"
)

// TestimonialService defines the testimonial operations used by the handler
type TestimonialService interface {
	ListWithFallback(ctx context.Context) []*entities.Testimonial
	List(ctx context.Context) ([]*entities.Testimonial, error)
	Create(ctx context.Context, testimonial *entities.Testimonial) error
	Update(ctx context.Context, testimonial *entities.Testimonial) error
	Delete(ctx context.Context, id string) error
}

// TestimonialHandler handles testimonial requests
type TestimonialHandler struct {
	service TestimonialService
}

// NewTestimonialHandler creates a new testimonial handler
func NewTestimonialHandler(service TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{
		service: service,
	}
}

// ListPublic handles GET /api/testimonials. The public page always gets a
// usable list; a failed or empty read serves the built-in samples.
func (h *TestimonialHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	testimonials := h.service.ListWithFallback(r.Context())

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"testimonials": testimonials,
		"count":        len(testimonials),
	})
}

// ListAdmin handles GET /api/admin/testimonials
func (h *TestimonialHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.service.List(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err, "failed to list testimonials")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"testimonials": testimonials,
		"count":        len(testimonials),
	})
}

// Create handles POST /api/admin/testimonials
func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var testimonial entities.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&testimonial); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.Create(r.Context(), &testimonial); err != nil {
		respondWithServiceError(w, r, err, "failed to create testimonial")
		return
	}

	respondWithJSON(w, http.StatusCreated, testimonial)
}

// Update handles PUT /api/admin/testimonials/{id}
func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "testimonial ID is required")
		return
	}

	var testimonial entities.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&testimonial); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	testimonial.ID = id

	if err := h.service.Update(r.Context(), &testimonial); err != nil {
		respondWithServiceError(w, r, err, "failed to update testimonial")
		return
	}

	respondWithJSON(w, http.StatusOK, testimonial)
}

// Delete handles DELETE /api/admin/testimonials/{id}
func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "testimonial ID is required")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondWithServiceError(w, r, err, "failed to delete testimonial")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"id":     id,
		"status": "deleted",
	})
}
