package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stardental/clinic-backend/internal/api/handlers"
	"github.com/stardental/clinic-backend/internal/domain/entities"
	"github.com/stretchr/testify/assert"
)

type stubTestimonialService struct {
	fallback []*entities.Testimonial
	stored   []*entities.Testimonial
	listErr  error
}

func (s *stubTestimonialService) ListWithFallback(ctx context.Context) []*entities.Testimonial {
	return s.fallback
}

func (s *stubTestimonialService) List(ctx context.Context) ([]*entities.Testimonial, error) {
	return s.stored, s.listErr
}

func (s *stubTestimonialService) Create(ctx context.Context, testimonial *entities.Testimonial) error {
	testimonial.ID = "t-1"
	s.stored = append(s.stored, testimonial)
	return nil
}

func (s *stubTestimonialService) Update(ctx context.Context, testimonial *entities.Testimonial) error {
	return nil
}

func (s *stubTestimonialService) Delete(ctx context.Context, id string) error {
	return nil
}

func TestTestimonialHandler_ListPublic(t *testing.T) {
	// The public endpoint never errors; the service already degrades to
	// its built-in samples.
	service := &stubTestimonialService{fallback: []*entities.Testimonial{
		{ID: "sample-1", Name: "Sarah Mukasa"},
		{ID: "sample-2", Name: "John Wanyama"},
	}}
	handler := handlers.NewTestimonialHandler(service)

	req := httptest.NewRequest("GET", "/api/testimonials", nil)
	w := httptest.NewRecorder()

	handler.ListPublic(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Testimonials []*entities.Testimonial `json:"testimonials"`
		Count        int                     `json:"count"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, 2, response.Count)
}

func TestTestimonialHandler_ListAdmin(t *testing.T) {
	t.Run("returns stored testimonials", func(t *testing.T) {
		service := &stubTestimonialService{stored: []*entities.Testimonial{{ID: "t-1"}}}
		handler := handlers.NewTestimonialHandler(service)

		req := httptest.NewRequest("GET", "/api/admin/testimonials", nil)
		w := httptest.NewRecorder()

		handler.ListAdmin(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("surfaces store failures instead of falling back", func(t *testing.T) {
		service := &stubTestimonialService{listErr: errors.New("connection refused")}
		handler := handlers.NewTestimonialHandler(service)

		req := httptest.NewRequest("GET", "/api/admin/testimonials", nil)
		w := httptest.NewRecorder()

		handler.ListAdmin(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
