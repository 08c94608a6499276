package calendar

import (
	"context"

	"github.com/agendalivre/agenda-api/internal/models"
)

// Sync espelha agendamentos em um calendário externo (Google Calendar).
// A integração real mora fora deste serviço; aqui fica só o contrato.
// Falhas de sync nunca bloqueiam a criação do agendamento.
type Sync interface {
	CreateEvent(ctx context.Context, ap *models.Appointment) (eventID string, err error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type Noop struct{}

func (Noop) CreateEvent(ctx context.Context, ap *models.Appointment) (string, error) {
	return "", nil
}

func (Noop) DeleteEvent(ctx context.Context, eventID string) error {
	return nil
}

var _ Sync = Noop{}
