package repositories

import (
	"context"

	"github.com/stardental/clinic-backend/internal/domain/entities"
)

// TestimonialRepository defines the interface for testimonial data operations
type TestimonialRepository interface {
	// Create creates a new testimonial
	Create(ctx context.Context, testimonial *entities.Testimonial) error

	// List retrieves testimonials ordered by creation time descending
	List(ctx context.Context) ([]*entities.Testimonial, error)

	// Update replaces a testimonial's fields
	Update(ctx context.Context, testimonial *entities.Testimonial) error

	// Delete removes a testimonial permanently
	Delete(ctx context.Context, id string) error
}
