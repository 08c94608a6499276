package audit

import "github.com/rs/zerolog"

type Event struct {
	ProfessionalID uint
	Action         string
	Entity         string
	EntityID       *uint
	Metadata       any
}

// Sink é o destino final dos eventos (em produção, a tabela audit_logs).
type Sink interface {
	Log(professionalID uint, action, entity string, entityID *uint, metadata any) error
}

// Dispatcher grava eventos de auditoria fora do caminho da requisição.
type Dispatcher struct {
	sink  Sink
	log   zerolog.Logger
	queue chan Event
}

func NewDispatcher(sink Sink, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(
			ev.ProfessionalID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}
