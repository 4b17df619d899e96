package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/stardental/clinic-backend/internal/domain/entities"
	"github.com/stardental/clinic-backend/internal/domain/repositories"
	"github.com/stardental/clinic-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/stardental/clinic-backend/pkg/errors"
)

var appointmentColumns = []interface{}{
	"id", "full_name", "phone", "email", "age", "service", "service_name",
	"date", "time", "notes", "emergency_contact_name", "emergency_contact_phone",
	"status", "created_at", "updated_at",
}

// AppointmentAdapter implements the AppointmentRepository interface
type AppointmentAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewAppointmentAdapter creates a new appointment adapter
func NewAppointmentAdapter(client *postgres.Client) repositories.AppointmentRepository {
	return &AppointmentAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new appointment
func (a *AppointmentAdapter) Create(ctx context.Context, appointment *entities.Appointment) error {
	record := goqu.Record{
		"id":                      appointment.ID,
		"full_name":               appointment.FullName,
		"phone":                   appointment.Phone,
		"email":                   nullable(appointment.Email),
		"age":                     nullable(appointment.Age),
		"service":                 appointment.Service,
		"service_name":            appointment.ServiceName,
		"date":                    appointment.Date,
		"time":                    appointment.Time,
		"notes":                   nullable(appointment.Notes),
		"emergency_contact_name":  nullable(appointment.EmergencyContactName),
		"emergency_contact_phone": nullable(appointment.EmergencyContactPhone),
		"status":                  appointment.Status,
		"created_at":              appointment.CreatedAt,
		"updated_at":              appointment.UpdatedAt,
	}

	query, args, err := a.db.Insert("appointments").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create appointment", err)
	}

	return nil
}

// GetByID retrieves an appointment by ID
func (a *AppointmentAdapter) GetByID(ctx context.Context, id string) (*entities.Appointment, error) {
	query, args, err := a.db.Select(appointmentColumns...).
		From("appointments").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	appointment, err := scanAppointment(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("appointment with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get appointment", err)
	}

	return appointment, nil
}

// List retrieves appointments ordered by creation time descending
func (a *AppointmentAdapter) List(ctx context.Context, filter repositories.AppointmentFilter) ([]*entities.Appointment, error) {
	ds := a.db.Select(appointmentColumns...).
		From("appointments").
		Order(goqu.I("created_at").Desc())

	if filter.Status != "" {
		ds = ds.Where(goqu.Ex{"status": filter.Status})
	}
	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list appointments", err)
	}
	defer rows.Close()

	var appointments []*entities.Appointment
	for rows.Next() {
		appointment, err := scanAppointment(rows.Scan)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan appointment", err)
		}
		appointments = append(appointments, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read appointments", err)
	}

	return appointments, nil
}

// UpdateStatus transitions an appointment between statuses. The WHERE clause
// carries the expected current status, so a concurrent update that already
// moved the row causes this write to match zero rows instead of overwriting.
func (a *AppointmentAdapter) UpdateStatus(ctx context.Context, id string, from, to entities.AppointmentStatus) error {
	query, args, err := a.db.Update("appointments").
		Set(goqu.Record{
			"status":     to,
			"updated_at": goqu.L("NOW()"),
		}).
		Where(goqu.Ex{"id": id, "status": from}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build status update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update appointment status", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		// Either the appointment does not exist or its status moved on.
		if _, err := a.GetByID(ctx, id); err != nil {
			return err
		}
		return apperrors.NewValidationError(fmt.Sprintf("appointment %s is no longer %s", id, from))
	}

	return nil
}

func scanAppointment(scan func(dest ...interface{}) error) (*entities.Appointment, error) {
	appointment := &entities.Appointment{}
	var email, age, notes, emergencyName, emergencyPhone sql.NullString

	err := scan(
		&appointment.ID,
		&appointment.FullName,
		&appointment.Phone,
		&email,
		&age,
		&appointment.Service,
		&appointment.ServiceName,
		&appointment.Date,
		&appointment.Time,
		&notes,
		&emergencyName,
		&emergencyPhone,
		&appointment.Status,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	appointment.Email = email.String
	appointment.Age = age.String
	appointment.Notes = notes.String
	appointment.EmergencyContactName = emergencyName.String
	appointment.EmergencyContactPhone = emergencyPhone.String

	return appointment, nil
}

func nullable(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
