package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendalivre/agenda-api/internal/audit"
	domain "github.com/agendalivre/agenda-api/internal/domain/schedule"
	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/payment"
	"github.com/agendalivre/agenda-api/internal/timezone"
)

func bookingFixture(t *testing.T) (*fakeRepo, *fakeGateway, *fakeCalendar, *CreateBooking, *time.Location) {
	t.Helper()

	repo := newFakeRepo()

	repo.professionals[1] = &models.Professional{
		ID:       1,
		Name:     "Maria Silva",
		Slug:     "maria-silva",
		Timezone: "America/Sao_Paulo",
	}
	repo.services[10] = &models.Service{
		ID:              10,
		ProfessionalID:  1,
		Name:            "Aula de inglês",
		DurationMinutes: 60,
		Price:           120,
		Active:          true,
	}
	repo.blocks = []models.AvailabilityBlock{
		{ID: 100, ProfessionalID: 1, DayOfWeek: 1, StartTime: "08:00", EndTime: "12:00", Active: true},
	}

	loc := timezone.Location("America/Sao_Paulo")

	gateway := &fakeGateway{}
	cal := &fakeCalendar{}

	uc := NewCreateBooking(
		repo,
		gateway,
		cal,
		audit.NewDispatcher(&fakeSink{}, zerolog.Nop()),
		zerolog.Nop(),
	)
	uc.now = func() time.Time {
		return time.Date(2026, 9, 1, 10, 0, 0, 0, loc)
	}

	return repo, gateway, cal, uc, loc
}

// segunda 2026-09-14 09:00 no fuso do profissional
func mondaySlot(loc *time.Location) (time.Time, time.Time) {
	start := time.Date(2026, 9, 14, 9, 0, 0, 0, loc)
	return start.UTC(), start.Add(time.Hour).UTC()
}

func TestCreateBookingSuccess(t *testing.T) {
	repo, _, _, uc, loc := bookingFixture(t)
	start, end := mondaySlot(loc)

	result, err := uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: 1,
		ServiceID:      10,
		StudentName:    "Ana Souza",
		StudentEmail:   "Ana@Exemplo.COM",
		StudentPhone:   "11999990000",
		StartTime:      start,
		EndTime:        end,
		Notes:          "primeira aula",
	})
	require.NoError(t, err)

	ap := result.Appointment
	require.NotNil(t, ap)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.NotEqual(t, uuid.Nil, ap.PublicID)
	assert.Equal(t, start, ap.StartTime)
	assert.Equal(t, end, ap.EndTime)
	assert.Empty(t, result.CheckoutURL)

	// aluno criado com e-mail normalizado
	student, ok := repo.students["ana@exemplo.com"]
	require.True(t, ok)
	assert.Equal(t, student.ID, ap.StudentID)

	require.Len(t, repo.appointments, 1)
}

func TestCreateBookingReusesStudent(t *testing.T) {
	repo, _, _, uc, loc := bookingFixture(t)
	start, end := mondaySlot(loc)

	existing := &models.Student{ID: 77, ProfessionalID: 1, Name: "Ana", Email: "ana@exemplo.com"}
	repo.students["ana@exemplo.com"] = existing

	result, err := uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: 1,
		ServiceID:      10,
		StudentName:    "Ana Souza",
		StudentEmail:   "ana@exemplo.com",
		StartTime:      start,
		EndTime:        end,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(77), result.Appointment.StudentID)
}

func TestCreateBookingMisalignedWindow(t *testing.T) {
	_, _, _, uc, loc := bookingFixture(t)

	// 09:30 está dentro do bloco mas fora da grade de 60 em 60
	start := time.Date(2026, 9, 14, 9, 30, 0, 0, loc).UTC()

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: 1,
		ServiceID:      10,
		StudentName:    "Ana",
		StudentEmail:   "ana@exemplo.com",
		StartTime:      start,
		EndTime:        start.Add(time.Hour),
	})
	assert.True(t, httperr.IsBusiness(err, "outside_availability"))
}

func TestCreateBookingOutsideBlock(t *testing.T) {
	_, _, _, uc, loc := bookingFixture(t)

	// 13:00 de segunda: alinhado, mas nenhum bloco cobre
	start := time.Date(2026, 9, 14, 13, 0, 0, 0, loc).UTC()

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: 1,
		ServiceID:      10,
		StudentName:    "Ana",
		StudentEmail:   "ana@exemplo.com",
		StartTime:      start,
		EndTime:        start.Add(time.Hour),
	})
	assert.True(t, httperr.IsBusiness(err, "outside_availability"))
}

func TestCreateBookingWrongDuration(t *testing.T) {
	_, _, _, uc, loc := bookingFixture(t)
	start, _ := mondaySlot(loc)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: 1,
		ServiceID:      10,
		StudentName:    "Ana",
		StudentEmail:   "ana@exemplo.com",
		StartTime:      start,
		EndTime:        start.Add(90 * time.Minute),
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_slot"))
}

func TestCreateBookingInvertedWindow(t *testing.T) {
	_, _, _, uc, loc := bookingFixture(t)
	start, _ := mondaySlot(loc)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: 1,
		ServiceID:      10,
		StudentName:    "Ana",
		StudentEmail:   "ana@exemplo.com",
		StartTime:      start,
		EndTime:        start,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_time_range"))
}

func TestCreateBookingTooSoon(t *testing.T) {
	repo, _, _, uc, loc := bookingFixture(t)
	start, end := mondaySlot(loc)

	repo.professionals[1].MinAdvanceMinutes = 120
	uc.now = func() time.Time {
		// 1h antes do slot, mas a antecedência mínima é 2h
		return time.Date(2026, 9, 14, 8, 0, 0, 0, loc)
	}

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: 1,
		ServiceID:      10,
		StudentName:    "Ana",
		StudentEmail:   "ana@exemplo.com",
		StartTime:      start,
		EndTime:        end,
	})
	assert.True(t, httperr.IsBusiness(err, "too_soon"))
}

func TestCreateBookingTimeConflict(t *testing.T) {
	repo, _, _, uc, loc := bookingFixture(t)
	start, end := mondaySlot(loc)

	repo.appointments = append(repo.appointments, &models.Appointment{
		ID:             50,
		ProfessionalID: 1,
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.StatusPending),
	})

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: 1,
		ServiceID:      10,
		StudentName:    "Ana",
		StudentEmail:   "ana@exemplo.com",
		StartTime:      start,
		EndTime:        end,
	})
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
	require.Len(t, repo.appointments, 1)
}

func TestCreateBookingCanceledDoesNotBlock(t *testing.T) {
	repo, _, _, uc, loc := bookingFixture(t)
	start, end := mondaySlot(loc)

	repo.appointments = append(repo.appointments, &models.Appointment{
		ID:             50,
		ProfessionalID: 1,
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.StatusCanceled),
	})

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: 1,
		ServiceID:      10,
		StudentName:    "Ana",
		StudentEmail:   "ana@exemplo.com",
		StartTime:      start,
		EndTime:        end,
	})
	require.NoError(t, err)
	require.Len(t, repo.appointments, 2)
}

func TestCreateBookingPendingPayment(t *testing.T) {
	repo, gateway, _, uc, loc := bookingFixture(t)
	start, end := mondaySlot(loc)

	repo.services[10].RequiresPayment = true
	gateway.checkout = &payment.Checkout{
		PreferenceID: "pref-123",
		URL:          "https://pago.example/checkout/pref-123",
	}

	result, err := uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: 1,
		ServiceID:      10,
		StudentName:    "Ana",
		StudentEmail:   "ana@exemplo.com",
		StartTime:      start,
		EndTime:        end,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPendingPayment), result.Appointment.Status)
	assert.Equal(t, "pref-123", result.Appointment.PaymentPreferenceID)
	assert.Equal(t, "https://pago.example/checkout/pref-123", result.CheckoutURL)
	assert.Equal(t, 1, gateway.calls)
}

func TestCreateBookingCheckoutFailureKeepsBooking(t *testing.T) {
	repo, gateway, _, uc, loc := bookingFixture(t)
	start, end := mondaySlot(loc)

	repo.services[10].RequiresPayment = true
	gateway.err = errors.New("gateway down")

	result, err := uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: 1,
		ServiceID:      10,
		StudentName:    "Ana",
		StudentEmail:   "ana@exemplo.com",
		StartTime:      start,
		EndTime:        end,
	})
	require.NoError(t, err)

	// reserva fica de pé mesmo sem checkout
	assert.Equal(t, string(domain.StatusPendingPayment), result.Appointment.Status)
	assert.Empty(t, result.CheckoutURL)
	require.Len(t, repo.appointments, 1)
}

func TestCreateBookingSyncsCalendar(t *testing.T) {
	_, _, cal, uc, loc := bookingFixture(t)
	start, end := mondaySlot(loc)

	cal.eventID = "evt-42"

	result, err := uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: 1,
		ServiceID:      10,
		StudentName:    "Ana",
		StudentEmail:   "ana@exemplo.com",
		StartTime:      start,
		EndTime:        end,
	})
	require.NoError(t, err)
	assert.Equal(t, "evt-42", result.Appointment.CalendarEventID)
}

func TestCreateBookingNotFoundErrors(t *testing.T) {
	repo, _, _, uc, loc := bookingFixture(t)
	start, end := mondaySlot(loc)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: 99,
		ServiceID:      10,
		StudentName:    "Ana",
		StudentEmail:   "ana@exemplo.com",
		StartTime:      start,
		EndTime:        end,
	})
	assert.True(t, httperr.IsBusiness(err, "professional_not_found"))

	repo.services[10].Active = false
	_, err = uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: 1,
		ServiceID:      10,
		StudentName:    "Ana",
		StudentEmail:   "ana@exemplo.com",
		StartTime:      start,
		EndTime:        end,
	})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}
