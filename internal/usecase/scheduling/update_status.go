package scheduling

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agendalivre/agenda-api/internal/audit"
	"github.com/agendalivre/agenda-api/internal/calendar"
	domain "github.com/agendalivre/agenda-api/internal/domain/schedule"
	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/timezone"
)

// UpdateAppointmentStatus aplica uma transição pedida pelo dashboard
// (confirmar / cancelar), guardada pela tabela de transições do domínio.
type UpdateAppointmentStatus struct {
	repo     domain.Repository
	calendar calendar.Sync
	audit    *audit.Dispatcher
	log      zerolog.Logger
	now      func() time.Time
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	cal calendar.Sync,
	auditDisp *audit.Dispatcher,
	log zerolog.Logger,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:     repo,
		calendar: cal,
		audit:    auditDisp,
		log:      log,
		now:      time.Now,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	professionalID uint,
	appointmentID uint,
	to domain.Status,
) (*models.Appointment, error) {

	prof, err := uc.repo.GetProfessionalByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForProfessional(ctx, appointmentID, professionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := uc.now().In(timezone.Location(prof.Timezone))

	switch to {
	case domain.StatusConfirmed:
		err = domain.Confirm(ap, now)
	case domain.StatusCanceled:
		err = domain.Cancel(ap, now)
	default:
		err = httperr.ErrBusiness("invalid_status")
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if to == domain.StatusCanceled && ap.CalendarEventID != "" {
		if err := uc.calendar.DeleteEvent(ctx, ap.CalendarEventID); err != nil {
			uc.log.Warn().Err(err).Uint("appointment_id", ap.ID).Msg("calendar event removal failed")
		}
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: professionalID,
		Action:         "appointment_" + string(to),
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	return ap, nil
}
