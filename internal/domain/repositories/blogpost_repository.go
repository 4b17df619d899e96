package repositories

import (
	"context"

	"github.com/stardental/clinic-backend/internal/domain/entities"
)

// BlogPostRepository defines the interface for blog post data operations
type BlogPostRepository interface {
	// Create creates a new blog post
	Create(ctx context.Context, post *entities.BlogPost) error

	// GetByID retrieves a blog post by ID
	GetByID(ctx context.Context, id string) (*entities.BlogPost, error)

	// List retrieves blog posts ordered by creation time descending.
	// A limit of 0 returns all posts.
	List(ctx context.Context, limit int) ([]*entities.BlogPost, error)

	// Update replaces a blog post's editable fields
	Update(ctx context.Context, post *entities.BlogPost) error

	// Delete removes a blog post permanently
	Delete(ctx context.Context, id string) error
}
