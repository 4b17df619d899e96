package entities

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// statusTransitions is the single source of truth for permitted status
// changes. Anything not listed here is rejected at write time.
var statusTransitions = map[AppointmentStatus]map[AppointmentStatus]struct{}{
	AppointmentStatusPending: {
		AppointmentStatusConfirmed: {},
		AppointmentStatusCancelled: {},
	},
	AppointmentStatusConfirmed: {
		AppointmentStatusCompleted: {},
	},
	AppointmentStatusCancelled: {},
	AppointmentStatusCompleted: {},
}

// IsValid reports whether the status is one of the known enum values.
func (s AppointmentStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo reports whether the transition s -> next is permitted.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}
	_, ok = allowed[next]
	return ok
}

// IsTerminal reports whether no further transitions are permitted.
func (s AppointmentStatus) IsTerminal() bool {
	allowed, ok := statusTransitions[s]
	return ok && len(allowed) == 0
}

// AllowedTransitions returns the statuses reachable from s.
func (s AppointmentStatus) AllowedTransitions() []AppointmentStatus {
	allowed := statusTransitions[s]
	out := make([]AppointmentStatus, 0, len(allowed))
	for _, candidate := range []AppointmentStatus{
		AppointmentStatusPending,
		AppointmentStatusConfirmed,
		AppointmentStatusCancelled,
		AppointmentStatusCompleted,
	} {
		if _, ok := allowed[candidate]; ok {
			out = append(out, candidate)
		}
	}
	return out
}

// Appointment represents a patient booking request
type Appointment struct {
	ID                    string            `json:"id" db:"id"`
	FullName              string            `json:"full_name" db:"full_name"`
	Phone                 string            `json:"phone" db:"phone"`
	Email                 string            `json:"email,omitempty" db:"email"`
	Age                   string            `json:"age,omitempty" db:"age"`
	Service               string            `json:"service" db:"service"`
	ServiceName           string            `json:"service_name" db:"service_name"`
	Date                  string            `json:"date" db:"date"`
	Time                  string            `json:"time" db:"time"`
	Notes                 string            `json:"notes,omitempty" db:"notes"`
	EmergencyContactName  string            `json:"emergency_contact_name,omitempty" db:"emergency_contact_name"`
	EmergencyContactPhone string            `json:"emergency_contact_phone,omitempty" db:"emergency_contact_phone"`
	Status                AppointmentStatus `json:"status" db:"status"`
	CreatedAt             time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at" db:"updated_at"`
}
