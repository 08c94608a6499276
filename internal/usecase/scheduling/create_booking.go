package scheduling

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agendalivre/agenda-api/internal/audit"
	"github.com/agendalivre/agenda-api/internal/calendar"
	domain "github.com/agendalivre/agenda-api/internal/domain/schedule"
	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/payment"
	"github.com/agendalivre/agenda-api/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateBookingInput struct {
	ProfessionalID uint
	ServiceID      uint

	StudentName  string
	StudentEmail string
	StudentPhone string

	// Janela escolhida na página pública, em UTC
	StartTime time.Time
	EndTime   time.Time

	Notes string
}

type BookingResult struct {
	Appointment *models.Appointment `json:"appointment"`
	CheckoutURL string              `json:"checkout_url,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking é a admissão de reserva: valida a janela contra o
// predicado completo de geração de slots (bloco ativo, alinhamento de
// grade, duração exata) e só então insere — não basta evitar conflito
// com agendamentos existentes, senão uma janela forjada passaria.
type CreateBooking struct {
	repo     domain.Repository
	payments payment.Gateway
	calendar calendar.Sync
	audit    *audit.Dispatcher
	log      zerolog.Logger
	now      func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	payments payment.Gateway,
	cal calendar.Sync,
	auditDisp *audit.Dispatcher,
	log zerolog.Logger,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		payments: payments,
		calendar: cal,
		audit:    auditDisp,
		log:      log,
		now:      time.Now,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*BookingResult, error) {

	prof, err := uc.repo.GetProfessionalByID(ctx, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	svc, err := uc.repo.GetService(ctx, prof.ID, in.ServiceID)
	if err != nil || !svc.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	start := in.StartTime.UTC()
	end := in.EndTime.UTC()

	if !start.Before(end) {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	duration := time.Duration(svc.DurationMinutes) * time.Minute
	if end.Sub(start) != duration {
		return nil, httperr.ErrBusiness("invalid_slot")
	}

	loc := timezone.Location(prof.Timezone)
	localStart := start.In(loc)
	day := timezone.StartOfDay(localStart, loc)

	now := uc.now().In(loc)
	minAllowed := now.Add(time.Duration(prof.MinAdvanceMinutes) * time.Minute)
	if !start.After(minAllowed) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	blocks, err := uc.repo.ListActiveBlocks(ctx, prof.ID, int(localStart.Weekday()))
	if err != nil {
		return nil, err
	}

	inBlock := false
	for _, b := range blocks {
		if domain.WithinBlock(day, b.StartTime, b.EndTime, duration, start, end) {
			inBlock = true
			break
		}
	}
	if !inBlock {
		return nil, httperr.ErrBusiness("outside_availability")
	}

	email := strings.ToLower(strings.TrimSpace(in.StudentEmail))
	student, err := uc.repo.GetOrCreateStudent(
		ctx,
		prof.ID,
		strings.TrimSpace(in.StudentName),
		email,
		strings.TrimSpace(in.StudentPhone),
	)
	if err != nil {
		return nil, err
	}

	// Caminho feliz do double-booking; a corrida real é decidida pela
	// exclusion constraint na inserção.
	if err := uc.repo.AssertNoTimeConflict(ctx, prof.ID, start, end); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		PublicID:       uuid.New(),
		ProfessionalID: prof.ID,
		ServiceID:      svc.ID,
		StudentID:      student.ID,
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.InitialStatus(svc.RequiresPayment)),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	result := &BookingResult{Appointment: ap}

	dirty := false

	if ap.Status == string(domain.StatusPendingPayment) {
		checkout, err := uc.payments.CreateCheckout(ctx, ap, svc, student)
		if err != nil {
			// reserva fica de pé; cobrança pode ser refeita manualmente
			uc.log.Warn().Err(err).Uint("appointment_id", ap.ID).Msg("checkout creation failed")
		} else if checkout != nil {
			ap.PaymentPreferenceID = checkout.PreferenceID
			result.CheckoutURL = checkout.URL
			dirty = true
		}
	}

	if eventID, err := uc.calendar.CreateEvent(ctx, ap); err != nil {
		uc.log.Warn().Err(err).Uint("appointment_id", ap.ID).Msg("calendar sync failed")
	} else if eventID != "" {
		ap.CalendarEventID = eventID
		dirty = true
	}

	if dirty {
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			uc.log.Warn().Err(err).Uint("appointment_id", ap.ID).Msg("failed to persist booking extras")
		}
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: prof.ID,
		Action:         "appointment_created",
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	return result, nil
}
