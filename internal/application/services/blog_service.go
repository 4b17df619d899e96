package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stardental/clinic-backend/internal/domain/entities"
	"github.com/stardental/clinic-backend/internal/domain/repositories"
)

// BlogService handles blog post management
type BlogService struct {
	repo repositories.BlogPostRepository
}

// NewBlogService creates a new blog service
func NewBlogService(repo repositories.BlogPostRepository) *BlogService {
	return &BlogService{repo: repo}
}

// List retrieves all blog posts, newest first
func (s *BlogService) List(ctx context.Context) ([]*entities.BlogPost, error) {
	return s.repo.List(ctx, 0)
}

// ListRecent retrieves the n most recent blog posts
func (s *BlogService) ListRecent(ctx context.Context, n int) ([]*entities.BlogPost, error) {
	if n <= 0 {
		n = 3
	}
	return s.repo.List(ctx, n)
}

// GetByID retrieves a blog post by ID
func (s *BlogService) GetByID(ctx context.Context, id string) (*entities.BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}

// Create creates a blog post. Posts are always saved published.
func (s *BlogService) Create(ctx context.Context, post *entities.BlogPost) error {
	if err := validatePost(post); err != nil {
		return err
	}

	post.ID = uuid.New().String()
	post.Published = true
	post.CreatedAt = time.Now().UTC()
	post.UpdatedAt = post.CreatedAt

	return s.repo.Create(ctx, post)
}

// Update replaces a blog post's editable fields and stamps a new update time
func (s *BlogService) Update(ctx context.Context, post *entities.BlogPost) error {
	if err := validatePost(post); err != nil {
		return err
	}

	post.Published = true
	post.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, post)
}

// Delete removes a blog post permanently
func (s *BlogService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validatePost(post *entities.BlogPost) error {
	post.Title = strings.TrimSpace(post.Title)
	post.Excerpt = strings.TrimSpace(post.Excerpt)
	post.Content = strings.TrimSpace(post.Content)
	post.Author = strings.TrimSpace(post.Author)
	post.ReadTime = strings.TrimSpace(post.ReadTime)

	fields := FieldErrors{}
	if post.Title == "" {
		fields["title"] = "Title is required"
	}
	if post.Excerpt == "" {
		fields["excerpt"] = "Excerpt is required"
	}
	if post.Content == "" {
		fields["content"] = "Content is required"
	}
	if post.Category == "" {
		fields["category"] = "Category is required"
	} else if !entities.IsValidBlogCategory(post.Category) {
		fields["category"] = "Category must be one of the known categories"
	}
	if post.Author == "" {
		fields["author"] = "Author is required"
	}
	if post.ReadTime == "" {
		fields["read_time"] = "Read time is required"
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}
