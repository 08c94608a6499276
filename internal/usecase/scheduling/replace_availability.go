package scheduling

import (
	"context"

	"github.com/agendalivre/agenda-api/internal/audit"
	domain "github.com/agendalivre/agenda-api/internal/domain/schedule"
	"github.com/agendalivre/agenda-api/internal/models"
)

// ReplaceAvailability troca o expediente semanal inteiro do profissional.
// Semântica replace-all: o que não vier no payload deixa de existir.
type ReplaceAvailability struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReplaceAvailability(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *ReplaceAvailability {
	return &ReplaceAvailability{
		repo:  repo,
		audit: auditDisp,
	}
}

// Execute valida e persiste. Violações de validação voltam como dados
// (segunda saída), todas de uma vez — nada é gravado se houver qualquer
// violação.
func (uc *ReplaceAvailability) Execute(
	ctx context.Context,
	professionalID uint,
	blocks []domain.BlockInput,
) ([]models.AvailabilityBlock, []string, error) {

	if violations := domain.ValidateWeek(blocks); len(violations) > 0 {
		return nil, violations, nil
	}

	rows := make([]models.AvailabilityBlock, 0, len(blocks))
	for _, b := range blocks {
		// ValidateWeek garante que NormalizeHM não falha aqui
		start, _ := domain.NormalizeHM(b.StartTime)
		end, _ := domain.NormalizeHM(b.EndTime)

		rows = append(rows, models.AvailabilityBlock{
			ProfessionalID: professionalID,
			DayOfWeek:      b.DayOfWeek,
			StartTime:      start,
			EndTime:        end,
			Active:         true,
		})
	}

	saved, err := uc.repo.ReplaceBlocks(ctx, professionalID, rows)
	if err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: professionalID,
		Action:         "availability_replaced",
		Entity:         "availability_block",
		Metadata:       map[string]any{"blocks": len(saved)},
	})

	return saved, nil, nil
}
