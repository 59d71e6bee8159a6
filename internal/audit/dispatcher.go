package audit

import "github.com/rs/zerolog"

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *int64
	Metadata any
}

// Writer es el destino final de los eventos; en producción es el
// Logger respaldado por gorm, en pruebas un stub.
type Writer interface {
	Log(userID *uint, action, entity string, entityID *int64, metadata any) error
}

// Dispatcher desacopla la escritura de auditoría del camino de la
// petición: cola en memoria con descarte si se llena, la API nunca se
// bloquea por auditoría.
type Dispatcher struct {
	logger Writer
	log    zerolog.Logger
	queue  chan Event
}

func NewDispatcher(logger Writer, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
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
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}
