package payment

import (
	"context"

	"github.com/agendalivre/agenda-api/internal/models"
)

// Checkout é o resultado da criação de uma cobrança: o aluno é
// redirecionado para URL e o agendamento guarda PreferenceID.
type Checkout struct {
	PreferenceID string
	URL          string
}

type Gateway interface {
	CreateCheckout(
		ctx context.Context,
		ap *models.Appointment,
		svc *models.Service,
		student *models.Student,
	) (*Checkout, error)
}

// Disabled é usado quando MP_ACCESS_TOKEN não está configurado:
// serviços com requires_payment continuam em pending_payment, mas sem
// link de checkout (cobrança manual).
type Disabled struct{}

func (Disabled) CreateCheckout(
	ctx context.Context,
	ap *models.Appointment,
	svc *models.Service,
	student *models.Student,
) (*Checkout, error) {
	return nil, nil
}

var _ Gateway = Disabled{}
