package repositories

import (
	"context"

	"github.com/stardental/clinic-backend/internal/domain/entities"
)

// UserRepository defines the interface for admin user data operations
type UserRepository interface {
	// Create creates a new admin user
	Create(ctx context.Context, user *entities.AdminUser) error

	// GetByEmail retrieves an admin user by email
	GetByEmail(ctx context.Context, email string) (*entities.AdminUser, error)
}
