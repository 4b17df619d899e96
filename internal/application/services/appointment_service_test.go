package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stardental/clinic-backend/internal/application/services"
	"github.com/stardental/clinic-backend/internal/domain/entities"
	"github.com/stardental/clinic-backend/internal/domain/repositories"
	apperrors "github.com/stardental/clinic-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mocks

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entities.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id string) (*entities.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) List(ctx context.Context, filter repositories.AppointmentFilter) ([]*entities.Appointment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, id string, from, to entities.AppointmentStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, channel string, event *entities.AppointmentEvent) error {
	args := m.Called(ctx, channel, event)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.AppointmentEvent, error) {
	return nil, nil
}

func (m *MockEventBus) Unsubscribe(ctx context.Context, channel string) error {
	return nil
}

func (m *MockEventBus) Close() error {
	return nil
}

// Tests

func TestAppointmentService_Book(t *testing.T) {
	t.Run("successfully books appointment as pending", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		bus := new(MockEventBus)
		service := services.NewAppointmentService(repo, bus)

		appointment := &entities.Appointment{
			FullName: "Jane Nansubuga",
			Phone:    "+256700123456",
			Service:  "teeth-whitening",
			Date:     "2026-09-15",
			Time:     "10:30",
		}

		repo.On("Create", mock.Anything, mock.MatchedBy(func(a *entities.Appointment) bool {
			return a.Status == entities.AppointmentStatusPending && a.ID != ""
		})).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything, mock.MatchedBy(func(e *entities.AppointmentEvent) bool {
			return e.EventType == entities.AppointmentEventTypeCreated
		})).Return(nil)

		err := service.Book(context.Background(), appointment)

		assert.NoError(t, err)
		assert.Equal(t, "teeth-whitening", appointment.ServiceName) // defaulted from service
		repo.AssertExpectations(t)
		bus.AssertExpectations(t)
	})

	t.Run("discards any status carried in the payload", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		service := services.NewAppointmentService(repo, nil)

		appointment := &entities.Appointment{
			FullName: "Jane Nansubuga",
			Phone:    "+256700123456",
			Service:  "dental-implants",
			Date:     "2026-09-15",
			Time:     "14:00",
			Status:   entities.AppointmentStatusConfirmed,
		}

		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		err := service.Book(context.Background(), appointment)

		assert.NoError(t, err)
		assert.Equal(t, entities.AppointmentStatusPending, appointment.Status)
	})

	t.Run("rejects missing required fields with per-field messages", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		service := services.NewAppointmentService(repo, nil)

		err := service.Book(context.Background(), &entities.Appointment{
			FullName: "  ",
			Date:     "2026-09-15",
			Time:     "10:30",
		})

		var fields services.FieldErrors
		assert.ErrorAs(t, err, &fields)
		assert.Contains(t, fields, "full_name")
		assert.Contains(t, fields, "phone")
		assert.Contains(t, fields, "service")
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		service := services.NewAppointmentService(repo, nil)

		err := service.Book(context.Background(), &entities.Appointment{
			FullName: "Jane Nansubuga",
			Phone:    "+256700123456",
			Service:  "checkup",
			Date:     "15/09/2026",
			Time:     "10:30",
		})

		var fields services.FieldErrors
		assert.ErrorAs(t, err, &fields)
		assert.Contains(t, fields, "date")
	})

	t.Run("works without an event bus", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		service := services.NewAppointmentService(repo, nil)

		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		err := service.Book(context.Background(), &entities.Appointment{
			FullName: "Jane Nansubuga",
			Phone:    "+256700123456",
			Service:  "checkup",
			Date:     "2026-09-15",
			Time:     "10:30",
		})

		assert.NoError(t, err)
	})

	t.Run("booking succeeds even when publish fails", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		bus := new(MockEventBus)
		service := services.NewAppointmentService(repo, bus)

		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

		err := service.Book(context.Background(), &entities.Appointment{
			FullName: "Jane Nansubuga",
			Phone:    "+256700123456",
			Service:  "checkup",
			Date:     "2026-09-15",
			Time:     "10:30",
		})

		assert.NoError(t, err)
	})
}

func TestAppointmentService_List(t *testing.T) {
	t.Run("passes the status filter through", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		service := services.NewAppointmentService(repo, nil)

		expected := []*entities.Appointment{{ID: "a-1"}}
		repo.On("List", mock.Anything, repositories.AppointmentFilter{
			Status: entities.AppointmentStatusPending,
		}).Return(expected, nil)

		appointments, err := service.List(context.Background(), entities.AppointmentStatusPending)

		assert.NoError(t, err)
		assert.Equal(t, expected, appointments)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		service := services.NewAppointmentService(repo, nil)

		_, err := service.List(context.Background(), entities.AppointmentStatus("archived"))

		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
		repo.AssertNotCalled(t, "List")
	})
}

func TestAppointmentService_UpdateStatus(t *testing.T) {
	t.Run("applies an allowed transition and publishes", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		bus := new(MockEventBus)
		service := services.NewAppointmentService(repo, bus)

		repo.On("GetByID", mock.Anything, "a-1").Return(&entities.Appointment{
			ID:     "a-1",
			Status: entities.AppointmentStatusPending,
		}, nil)
		repo.On("UpdateStatus", mock.Anything, "a-1",
			entities.AppointmentStatusPending, entities.AppointmentStatusConfirmed).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything, mock.MatchedBy(func(e *entities.AppointmentEvent) bool {
			return e.EventType == entities.AppointmentEventTypeStatusChanged &&
				e.Status == entities.AppointmentStatusConfirmed
		})).Return(nil)

		err := service.UpdateStatus(context.Background(), "a-1", entities.AppointmentStatusConfirmed)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
		bus.AssertExpectations(t)
	})

	t.Run("rejects a transition the table does not permit", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		service := services.NewAppointmentService(repo, nil)

		repo.On("GetByID", mock.Anything, "a-1").Return(&entities.Appointment{
			ID:     "a-1",
			Status: entities.AppointmentStatusCompleted,
		}, nil)

		err := service.UpdateStatus(context.Background(), "a-1", entities.AppointmentStatusCancelled)

		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
		repo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("rejects an unknown target status without loading the row", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		service := services.NewAppointmentService(repo, nil)

		err := service.UpdateStatus(context.Background(), "a-1", entities.AppointmentStatus("done"))

		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
		repo.AssertNotCalled(t, "GetByID")
	})

	t.Run("propagates not found from the repository", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		service := services.NewAppointmentService(repo, nil)

		repo.On("GetByID", mock.Anything, "missing").Return(nil, apperrors.NewNotFoundError("appointment not found"))

		err := service.UpdateStatus(context.Background(), "missing", entities.AppointmentStatusConfirmed)

		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	})
}
