package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/stardental/clinic-backend/internal/domain/entities"
	"github.com/stardental/clinic-backend/internal/domain/providers"
	"github.com/stardental/clinic-backend/internal/domain/repositories"
	apperrors "github.com/stardental/clinic-backend/pkg/errors"
)

// AppointmentService handles appointment booking and status transitions
type AppointmentService struct {
	repo     repositories.AppointmentRepository
	eventBus providers.EventBus
}

// NewAppointmentService creates a new appointment service. The event bus is
// optional; without one the service simply skips publication.
func NewAppointmentService(repo repositories.AppointmentRepository, eventBus providers.EventBus) *AppointmentService {
	return &AppointmentService{
		repo:     repo,
		eventBus: eventBus,
	}
}

// Book creates a new appointment from a patient submission. Any status
// carried in the payload is discarded; a new appointment is always pending.
func (s *AppointmentService) Book(ctx context.Context, appointment *entities.Appointment) error {
	appointment.FullName = strings.TrimSpace(appointment.FullName)
	appointment.Phone = strings.TrimSpace(appointment.Phone)
	appointment.Email = strings.TrimSpace(appointment.Email)
	appointment.ServiceName = strings.TrimSpace(appointment.ServiceName)

	fields := FieldErrors{}
	if appointment.FullName == "" {
		fields["full_name"] = "Full name is required"
	}
	if appointment.Phone == "" {
		fields["phone"] = "Phone number is required"
	}
	if appointment.Service == "" {
		fields["service"] = "Service is required"
	}
	if appointment.Date == "" {
		fields["date"] = "Date is required"
	} else if _, err := time.Parse("2006-01-02", appointment.Date); err != nil {
		fields["date"] = "Date must be in YYYY-MM-DD format"
	}
	if appointment.Time == "" {
		fields["time"] = "Time is required"
	}
	if len(fields) > 0 {
		return fields
	}

	if appointment.ServiceName == "" {
		appointment.ServiceName = appointment.Service
	}

	appointment.ID = uuid.New().String()
	appointment.Status = entities.AppointmentStatusPending
	appointment.CreatedAt = time.Now().UTC()
	appointment.UpdatedAt = appointment.CreatedAt

	if err := s.repo.Create(ctx, appointment); err != nil {
		return err
	}

	s.publish(ctx, entities.NewAppointmentEvent(
		appointment.ID,
		entities.AppointmentEventTypeCreated,
		appointment.Status,
	))

	return nil
}

// List retrieves appointments, optionally filtered by status
func (s *AppointmentService) List(ctx context.Context, status entities.AppointmentStatus) ([]*entities.Appointment, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidationError("unknown appointment status")
	}
	return s.repo.List(ctx, repositories.AppointmentFilter{Status: status})
}

// ListRecent retrieves the n most recent appointments
func (s *AppointmentService) ListRecent(ctx context.Context, n int) ([]*entities.Appointment, error) {
	if n <= 0 {
		n = 3
	}
	return s.repo.List(ctx, repositories.AppointmentFilter{Limit: n})
}

// GetByID retrieves an appointment by ID
func (s *AppointmentService) GetByID(ctx context.Context, id string) (*entities.Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus applies a status transition, rejecting anything the
// transition table does not permit.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id string, next entities.AppointmentStatus) error {
	if !next.IsValid() {
		return apperrors.NewValidationError("unknown appointment status")
	}

	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !appointment.Status.CanTransitionTo(next) {
		return apperrors.NewValidationError(
			"cannot transition appointment from " + string(appointment.Status) + " to " + string(next),
		)
	}

	if err := s.repo.UpdateStatus(ctx, id, appointment.Status, next); err != nil {
		return err
	}

	s.publish(ctx, entities.NewAppointmentEvent(id, entities.AppointmentEventTypeStatusChanged, next))

	return nil
}

// publish sends an event to the bus. Publication failures are logged and
// swallowed; the write has already committed.
func (s *AppointmentService) publish(ctx context.Context, event *entities.AppointmentEvent) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, providers.EventChannelAppointments, event); err != nil {
		log.Warn().Err(err).Str("event_id", event.ID).Msg("failed to publish appointment event")
	}
}
