package entities_test

import (
	"testing"

	"github.com/stardental/clinic-backend/internal/domain/entities"
	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_IsValid(t *testing.T) {
	valid := []entities.AppointmentStatus{
		entities.AppointmentStatusPending,
		entities.AppointmentStatusConfirmed,
		entities.AppointmentStatusCancelled,
		entities.AppointmentStatusCompleted,
	}
	for _, status := range valid {
		assert.True(t, status.IsValid(), "expected %s to be valid", status)
	}

	assert.False(t, entities.AppointmentStatus("").IsValid())
	assert.False(t, entities.AppointmentStatus("archived").IsValid())
	assert.False(t, entities.AppointmentStatus("Pending").IsValid())
}

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    entities.AppointmentStatus
		to      entities.AppointmentStatus
		allowed bool
	}{
		{entities.AppointmentStatusPending, entities.AppointmentStatusConfirmed, true},
		{entities.AppointmentStatusPending, entities.AppointmentStatusCancelled, true},
		{entities.AppointmentStatusPending, entities.AppointmentStatusCompleted, false},
		{entities.AppointmentStatusPending, entities.AppointmentStatusPending, false},
		{entities.AppointmentStatusConfirmed, entities.AppointmentStatusCompleted, true},
		{entities.AppointmentStatusConfirmed, entities.AppointmentStatusCancelled, false},
		{entities.AppointmentStatusConfirmed, entities.AppointmentStatusPending, false},
		{entities.AppointmentStatusCancelled, entities.AppointmentStatusPending, false},
		{entities.AppointmentStatusCancelled, entities.AppointmentStatusConfirmed, false},
		{entities.AppointmentStatusCompleted, entities.AppointmentStatusCancelled, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestAppointmentStatus_IsTerminal(t *testing.T) {
	assert.False(t, entities.AppointmentStatusPending.IsTerminal())
	assert.False(t, entities.AppointmentStatusConfirmed.IsTerminal())
	assert.True(t, entities.AppointmentStatusCancelled.IsTerminal())
	assert.True(t, entities.AppointmentStatusCompleted.IsTerminal())
}

func TestAppointmentStatus_AllowedTransitions(t *testing.T) {
	assert.ElementsMatch(t,
		[]entities.AppointmentStatus{
			entities.AppointmentStatusConfirmed,
			entities.AppointmentStatusCancelled,
		},
		entities.AppointmentStatusPending.AllowedTransitions(),
	)
	assert.Empty(t, entities.AppointmentStatusCompleted.AllowedTransitions())
}
