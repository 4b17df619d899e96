package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/stardental/clinic-backend/internal/domain/entities"
	"github.com/stardental/clinic-backend/internal/domain/repositories"
	"github.com/stardental/clinic-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/stardental/clinic-backend/pkg/errors"
)

// UserAdapter implements the UserRepository interface
type UserAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewUserAdapter creates a new admin user adapter
func NewUserAdapter(client *postgres.Client) repositories.UserRepository {
	return &UserAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new admin user
func (a *UserAdapter) Create(ctx context.Context, user *entities.AdminUser) error {
	record := goqu.Record{
		"id":            user.ID,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"created_at":    user.CreatedAt,
	}

	query, args, err := a.db.Insert("admin_users").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create admin user", err)
	}

	return nil
}

// GetByEmail retrieves an admin user by email
func (a *UserAdapter) GetByEmail(ctx context.Context, email string) (*entities.AdminUser, error) {
	query, args, err := a.db.Select("id", "email", "password_hash", "created_at").
		From("admin_users").
		Where(goqu.Ex{"email": email}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	user := &entities.AdminUser{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("admin user %s not found", email))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get admin user", err)
	}

	return user, nil
}
