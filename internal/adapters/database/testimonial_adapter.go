package database

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/stardental/clinic-backend/internal/domain/entities"
	"github.com/stardental/clinic-backend/internal/domain/repositories"
	"github.com/stardental/clinic-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/stardental/clinic-backend/pkg/errors"
)

// TestimonialAdapter implements the TestimonialRepository interface
type TestimonialAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewTestimonialAdapter creates a new testimonial adapter
func NewTestimonialAdapter(client *postgres.Client) repositories.TestimonialRepository {
	return &TestimonialAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new testimonial
func (a *TestimonialAdapter) Create(ctx context.Context, testimonial *entities.Testimonial) error {
	record := goqu.Record{
		"id":         testimonial.ID,
		"name":       testimonial.Name,
		"location":   testimonial.Location,
		"rating":     testimonial.Rating,
		"treatment":  testimonial.Treatment,
		"text":       testimonial.Text,
		"created_at": testimonial.CreatedAt,
	}

	query, args, err := a.db.Insert("testimonials").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create testimonial", err)
	}

	return nil
}

// List retrieves testimonials ordered by creation time descending
func (a *TestimonialAdapter) List(ctx context.Context) ([]*entities.Testimonial, error) {
	query, args, err := a.db.Select(
		"id", "name", "location", "rating", "treatment", "text", "created_at",
	).From("testimonials").
		Order(goqu.I("created_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list testimonials", err)
	}
	defer rows.Close()

	var testimonials []*entities.Testimonial
	for rows.Next() {
		testimonial := &entities.Testimonial{}
		err := rows.Scan(
			&testimonial.ID,
			&testimonial.Name,
			&testimonial.Location,
			&testimonial.Rating,
			&testimonial.Treatment,
			&testimonial.Text,
			&testimonial.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan testimonial", err)
		}
		testimonials = append(testimonials, testimonial)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read testimonials", err)
	}

	return testimonials, nil
}

// Update replaces a testimonial's fields
func (a *TestimonialAdapter) Update(ctx context.Context, testimonial *entities.Testimonial) error {
	record := goqu.Record{
		"name":      testimonial.Name,
		"location":  testimonial.Location,
		"rating":    testimonial.Rating,
		"treatment": testimonial.Treatment,
		"text":      testimonial.Text,
	}

	query, args, err := a.db.Update("testimonials").
		Set(record).
		Where(goqu.Ex{"id": testimonial.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update testimonial", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("testimonial with id %s not found", testimonial.ID))
	}

	return nil
}

// Delete removes a testimonial permanently
func (a *TestimonialAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("testimonials").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete testimonial", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("testimonial with id %s not found", id))
	}

	return nil
}
