package payment

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/agendalivre/agenda-api/internal/models"
)

// MercadoPago cria uma preference de checkout por agendamento.
// Webhooks de captura ficam fora do escopo: o profissional confirma
// manualmente no dashboard após o pagamento.
type MercadoPago struct {
	prefs preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{
		prefs: preference.NewClient(cfg),
	}, nil
}

func (m *MercadoPago) CreateCheckout(
	ctx context.Context,
	ap *models.Appointment,
	svc *models.Service,
	student *models.Student,
) (*Checkout, error) {

	req := preference.Request{
		ExternalReference: ap.PublicID.String(),
		Items: []preference.ItemRequest{
			{
				ID:          fmt.Sprintf("service-%d", svc.ID),
				Title:       svc.Name,
				Description: svc.Description,
				CurrencyID:  "BRL",
				Quantity:    1,
				UnitPrice:   svc.Price,
			},
		},
		Payer: &preference.PayerRequest{
			Name:  student.Name,
			Email: student.Email,
		},
	}

	resp, err := m.prefs.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("mercadopago preference: %w", err)
	}

	return &Checkout{
		PreferenceID: resp.ID,
		URL:          resp.InitPoint,
	}, nil
}

var _ Gateway = (*MercadoPago)(nil)
