package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/stardental/clinic-backend/internal/domain/entities"
)

// BlogService defines the blog operations used by the handler
type BlogService interface {
	List(ctx context.Context) ([]*entities.BlogPost, error)
	ListRecent(ctx context.Context, n int) ([]*entities.BlogPost, error)
	GetByID(ctx context.Context, id string) (*entities.BlogPost, error)
	Create(ctx context.Context, post *entities.BlogPost) error
	Update(ctx context.Context, post *entities.BlogPost) error
	Delete(ctx context.Context, id string) error
}

// BlogHandler handles blog post requests
type BlogHandler struct {
	service BlogService
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(service BlogService) *BlogHandler {
	return &BlogHandler{
		service: service,
	}
}

// List handles GET /api/blog
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.List(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err, "failed to list blog posts")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
		"count": len(posts),
	})
}

// ListRecent handles GET /api/blog/recent
func (h *BlogHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit := 3
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	posts, err := h.service.ListRecent(r.Context(), limit)
	if err != nil {
		respondWithServiceError(w, r, err, "failed to list blog posts")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
		"count": len(posts),
	})
}

// Get handles GET /api/blog/{id}
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "post ID is required")
		return
	}

	post, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err, "failed to get blog post")
		return
	}

	respondWithJSON(w, http.StatusOK, post)
}

// Create handles POST /api/admin/blog
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var post entities.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.Create(r.Context(), &post); err != nil {
		respondWithServiceError(w, r, err, "failed to create blog post")
		return
	}

	respondWithJSON(w, http.StatusCreated, post)
}

// Update handles PUT /api/admin/blog/{id}
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "post ID is required")
		return
	}

	var post entities.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	post.ID = id

	if err := h.service.Update(r.Context(), &post); err != nil {
		respondWithServiceError(w, r, err, "failed to update blog post")
		return
	}

	respondWithJSON(w, http.StatusOK, post)
}

// Delete handles DELETE /api/admin/blog/{id}
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "post ID is required")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondWithServiceError(w, r, err, "failed to delete blog post")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"id":     id,
		"status": "deleted",
	})
}
