package scheduling

import (
	"context"
	"sort"
	"time"

	domain "github.com/agendalivre/agenda-api/internal/domain/schedule"
	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type GetSlotsInput struct {
	ProfessionalID uint
	ServiceID      uint
	Date           string // "2006-01-02", no fuso do profissional
}

type SlotsResult struct {
	Date                   string        `json:"date"`
	ProfessionalID         uint          `json:"professional_id"`
	ServiceDurationMinutes int           `json:"service_duration_minutes"`
	Slots                  []domain.Slot `json:"slots"`
}

// ======================================================
// USE CASE
// ======================================================

// GetSlots é o motor de slots: blocos do dia + agendamentos existentes +
// duração do serviço → sequência ordenada de janelas, cada uma marcada
// disponível ou ocupada. Puro: mesma entrada, mesma saída.
type GetSlots struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetSlots(repo domain.Repository) *GetSlots {
	return &GetSlots{
		repo: repo,
		now:  time.Now,
	}
}

func (uc *GetSlots) Execute(
	ctx context.Context,
	in GetSlotsInput,
) (*SlotsResult, error) {

	prof, err := uc.repo.GetProfessionalByID(ctx, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	svc, err := uc.repo.GetService(ctx, prof.ID, in.ServiceID)
	if err != nil || !svc.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	loc := timezone.Location(prof.Timezone)

	day, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	result := &SlotsResult{
		Date:                   in.Date,
		ProfessionalID:         prof.ID,
		ServiceDurationMinutes: svc.DurationMinutes,
		Slots:                  []domain.Slot{},
	}

	now := uc.now().In(loc)

	// Data passada não tem slot reservável por definição: lista vazia,
	// sem erro, mesmo que o cliente tenha burlado o min=today do picker.
	if day.Before(timezone.StartOfDay(now, loc)) {
		return result, nil
	}

	blocks, err := uc.repo.ListActiveBlocks(ctx, prof.ID, int(day.Weekday()))
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return result, nil
	}

	// AddDate (e não Add de 24h): em dia de virada de horário de verão o
	// dia local tem 23h ou 25h e a janela precisa fechar na meia-noite
	// seguinte do fuso.
	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		prof.ID,
		day,
		day.AddDate(0, 0, 1),
	)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.Interval, 0, len(appointments))
	for _, ap := range appointments {
		busy = append(busy, domain.Interval{Start: ap.StartTime, End: ap.EndTime})
	}

	duration := time.Duration(svc.DurationMinutes) * time.Minute
	cutoff := now.Add(time.Duration(prof.MinAdvanceMinutes) * time.Minute)

	// Blocos são fatiados independentemente; sobreposição de blocos já
	// foi barrada na validação e não é deduplicada aqui.
	for _, b := range blocks {
		result.Slots = append(result.Slots,
			domain.TileBlock(day, b.StartTime, b.EndTime, duration, busy, cutoff)...)
	}

	sort.Slice(result.Slots, func(i, j int) bool {
		return result.Slots[i].Start.Before(result.Slots[j].Start)
	})

	return result, nil
}
