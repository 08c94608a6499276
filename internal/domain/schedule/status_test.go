package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/models"
)

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus(false))
	assert.Equal(t, StatusPendingPayment, InitialStatus(true))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		ok   bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCanceled, true},
		{StatusPendingPayment, StatusConfirmed, true},
		{StatusPendingPayment, StatusCanceled, true},

		// terminais
		{StatusConfirmed, StatusCanceled, false},
		{StatusConfirmed, StatusPending, false},
		{StatusCanceled, StatusConfirmed, false},
		{StatusCanceled, StatusPending, false},
		{StatusCompleted, StatusCanceled, false},

		// sem caminho para completed ainda
		{StatusConfirmed, StatusCompleted, false},

		{StatusPending, StatusPending, false},
		{Status("garbage"), StatusConfirmed, false},
	}

	for _, tt := range tests {
		err := CanTransition(tt.from, tt.to)
		if tt.ok {
			assert.NoError(t, err, "%s -> %s", tt.from, tt.to)
		} else {
			assert.True(t, httperr.IsBusiness(err, "invalid_state"), "%s -> %s", tt.from, tt.to)
		}
	}
}

func TestConsumesTime(t *testing.T) {
	assert.True(t, ConsumesTime(StatusPending))
	assert.True(t, ConsumesTime(StatusPendingPayment))
	assert.True(t, ConsumesTime(StatusConfirmed))
	assert.True(t, ConsumesTime(StatusCompleted))

	// só cancelamento libera a agenda
	assert.False(t, ConsumesTime(StatusCanceled))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(StatusPending))
	assert.True(t, IsValid(StatusCompleted))
	assert.False(t, IsValid(Status("scheduled")))
	assert.False(t, IsValid(Status("")))
}

func TestConfirmAction(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusPending)}
	require.NoError(t, Confirm(ap, now))

	assert.Equal(t, string(StatusConfirmed), ap.Status)
	require.NotNil(t, ap.ConfirmedAt)
	assert.Equal(t, now, *ap.ConfirmedAt)

	// confirmar duas vezes não passa
	err := Confirm(ap, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancelAction(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusPendingPayment)}
	require.NoError(t, Cancel(ap, now))

	assert.Equal(t, string(StatusCanceled), ap.Status)
	require.NotNil(t, ap.CanceledAt)

	err := Cancel(ap, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
