package scheduling

import (
	"context"
	"time"

	domain "github.com/agendalivre/agenda-api/internal/domain/schedule"
	"github.com/agendalivre/agenda-api/internal/dto"
	"github.com/agendalivre/agenda-api/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	professionalID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	prof, err := uc.repo.GetProfessionalByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(prof.Timezone)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	// meia-noite seguinte no fuso, estável em dias de 23h/25h
	end := start.AddDate(0, 0, 1)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		professionalID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			PublicID:    ap.PublicID,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			StudentName: ap.Student.Name,
			ServiceName: ap.Service.Name,
		})
	}

	return out, nil
}
