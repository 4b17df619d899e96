package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stardental/clinic-backend/internal/api/handlers"
	"github.com/stardental/clinic-backend/internal/application/services"
	"github.com/stardental/clinic-backend/internal/domain/entities"
	apperrors "github.com/stardental/clinic-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type stubBlogService struct {
	posts      []*entities.BlogPost
	listErr    error
	recentN    int
	getResult  *entities.BlogPost
	getErr     error
	createErr  error
	updateErr  error
	deleteErr  error
	deletedIDs []string
}

func (s *stubBlogService) List(ctx context.Context) ([]*entities.BlogPost, error) {
	return s.posts, s.listErr
}

func (s *stubBlogService) ListRecent(ctx context.Context, n int) ([]*entities.BlogPost, error) {
	s.recentN = n
	if n < len(s.posts) {
		return s.posts[:n], s.listErr
	}
	return s.posts, s.listErr
}

func (s *stubBlogService) GetByID(ctx context.Context, id string) (*entities.BlogPost, error) {
	return s.getResult, s.getErr
}

func (s *stubBlogService) Create(ctx context.Context, post *entities.BlogPost) error {
	if s.createErr != nil {
		return s.createErr
	}
	post.ID = "post-1"
	post.Published = true
	return nil
}

func (s *stubBlogService) Update(ctx context.Context, post *entities.BlogPost) error {
	return s.updateErr
}

func (s *stubBlogService) Delete(ctx context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedIDs = append(s.deletedIDs, id)
	return nil
}

func TestBlogHandler_ListRecent(t *testing.T) {
	t.Run("defaults the limit to three", func(t *testing.T) {
		service := &stubBlogService{posts: []*entities.BlogPost{
			{ID: "p1"}, {ID: "p2"}, {ID: "p3"}, {ID: "p4"},
		}}
		handler := handlers.NewBlogHandler(service)

		req := httptest.NewRequest("GET", "/api/blog/recent", nil)
		w := httptest.NewRecorder()

		handler.ListRecent(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 3, service.recentN)
	})

	t.Run("honours an explicit limit", func(t *testing.T) {
		service := &stubBlogService{}
		handler := handlers.NewBlogHandler(service)

		req := httptest.NewRequest("GET", "/api/blog/recent?limit=6", nil)
		w := httptest.NewRecorder()

		handler.ListRecent(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 6, service.recentN)
	})

	t.Run("rejects a non-positive limit", func(t *testing.T) {
		handler := handlers.NewBlogHandler(&stubBlogService{})

		req := httptest.NewRequest("GET", "/api/blog/recent?limit=0", nil)
		w := httptest.NewRecorder()

		handler.ListRecent(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBlogHandler_Get(t *testing.T) {
	t.Run("returns 404 for a missing post", func(t *testing.T) {
		service := &stubBlogService{getErr: apperrors.NewNotFoundError("blog post not found")}
		handler := handlers.NewBlogHandler(service)

		req := httptest.NewRequest("GET", "/api/blog/missing", nil)
		req.SetPathValue("id", "missing")
		w := httptest.NewRecorder()

		handler.Get(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var response map[string]string
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, "blog post not found", response["error"])
	})
}

func TestBlogHandler_Create(t *testing.T) {
	t.Run("returns 201 with the stored post", func(t *testing.T) {
		handler := handlers.NewBlogHandler(&stubBlogService{})

		body := `{"title":"T","excerpt":"E","content":"C","category":"Treatments","author":"Dr. A","read_time":"5 min read"}`
		req := httptest.NewRequest("POST", "/api/admin/blog", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response entities.BlogPost
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, "post-1", response.ID)
		assert.True(t, response.Published)
	})

	t.Run("surfaces field errors from validation", func(t *testing.T) {
		service := &stubBlogService{createErr: services.FieldErrors{
			"excerpt": "Excerpt is required",
		}}
		handler := handlers.NewBlogHandler(service)

		req := httptest.NewRequest("POST", "/api/admin/blog", strings.NewReader(`{"title":"T"}`))
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response struct {
			Fields map[string]string `json:"fields"`
		}
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, "Excerpt is required", response.Fields["excerpt"])
	})
}

func TestBlogHandler_Delete(t *testing.T) {
	t.Run("deletes by path id", func(t *testing.T) {
		service := &stubBlogService{}
		handler := handlers.NewBlogHandler(service)

		req := httptest.NewRequest("DELETE", "/api/admin/blog/post-9", nil)
		req.SetPathValue("id", "post-9")
		w := httptest.NewRecorder()

		handler.Delete(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"post-9"}, service.deletedIDs)
	})

	t.Run("returns 404 when the post does not exist", func(t *testing.T) {
		service := &stubBlogService{deleteErr: apperrors.NewNotFoundError("blog post not found")}
		handler := handlers.NewBlogHandler(service)

		req := httptest.NewRequest("DELETE", "/api/admin/blog/missing", nil)
		req.SetPathValue("id", "missing")
		w := httptest.NewRecorder()

		handler.Delete(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
