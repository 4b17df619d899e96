package repositories

import (
	"context"

	"github.com/stardental/clinic-backend/internal/domain/entities"
)

// AppointmentRepository defines the interface for appointment data operations
type AppointmentRepository interface {
	// Create creates a new appointment
	Create(ctx context.Context, appointment *entities.Appointment) error

	// GetByID retrieves an appointment by ID
	GetByID(ctx context.Context, id string) (*entities.Appointment, error)

	// List retrieves appointments ordered by creation time descending
	List(ctx context.Context, filter AppointmentFilter) ([]*entities.Appointment, error)

	// UpdateStatus transitions an appointment from one status to another.
	// The write is guarded on the expected current status so that a racing
	// update cannot apply a transition the table does not permit.
	UpdateStatus(ctx context.Context, id string, from, to entities.AppointmentStatus) error
}

// AppointmentFilter defines filters for listing appointments
type AppointmentFilter struct {
	Status entities.AppointmentStatus
	Limit  int
}
