package schedule

import "github.com/agendalivre/agenda-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending        Status = "pending"
	StatusPendingPayment Status = "pending_payment"
	StatusConfirmed      Status = "confirmed"
	StatusCanceled       Status = "canceled"
	StatusCompleted      Status = "completed"
)

// transitions é a tabela explícita de transições permitidas.
// confirmed e canceled são terminais no escopo atual; completed fica
// reservado (nenhum caminho chega nele ainda).
var transitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusConfirmed: true,
		StatusCanceled:  true,
	},
	StatusPendingPayment: {
		StatusConfirmed: true,
		StatusCanceled:  true,
	},
}

// InitialStatus define o status de criação conforme o serviço exige
// pagamento ou não.
func InitialStatus(requiresPayment bool) Status {
	if requiresPayment {
		return StatusPendingPayment
	}
	return StatusPending
}

// CanTransition valida uma mudança de status pedida pelo dashboard.
func CanTransition(from, to Status) error {
	if !transitions[from][to] {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// ConsumesTime diz se um agendamento neste status ocupa a agenda.
// Apenas cancelados liberam o horário.
func ConsumesTime(s Status) bool {
	return s != StatusCanceled
}

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusPendingPayment, StatusConfirmed, StatusCanceled, StatusCompleted:
		return true
	}
	return false
}
