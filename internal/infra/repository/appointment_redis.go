package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/VerticeInmobiliaria/cita-scheduler/internal/httperr"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/models"
)

// Clave fija bajo la que vive el snapshot completo de citas.
const SnapshotKey = "citas_inmobiliaria"

// AppointmentRedisRepository persiste la lista completa de citas como
// un único arreglo JSON bajo una clave fija, reescrito en cada
// mutación. No hay escrituras parciales ni log de transacciones: el
// snapshot es la única fuente de verdad.
type AppointmentRedisRepository struct {
	client *redis.Client
	key    string
	logger zerolog.Logger

	mu     sync.Mutex
	lastID int64
}

func NewAppointmentRedisRepository(client *redis.Client, logger zerolog.Logger) *AppointmentRedisRepository {
	return &AppointmentRedisRepository{
		client: client,
		key:    SnapshotKey,
		logger: logger,
	}
}

// --------------------------------------------------
// Snapshot
// --------------------------------------------------

func (r *AppointmentRedisRepository) load(ctx context.Context) ([]models.Appointment, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return []models.Appointment{}, nil
	}
	if err != nil {
		return nil, err
	}

	var citas []models.Appointment
	if err := json.Unmarshal(raw, &citas); err != nil {
		// snapshot corrupto: se recupera como lista vacía, nunca se
		// propaga al usuario
		r.logger.Warn().Err(err).Str("key", r.key).Msg("snapshot de citas ilegible, se reinicia vacío")
		return []models.Appointment{}, nil
	}
	return citas, nil
}

func (r *AppointmentRedisRepository) save(ctx context.Context, citas []models.Appointment) error {
	raw, err := json.Marshal(citas)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key, raw, 0).Err()
}

// nextID entrega un token monotónico por orden de creación. Base
// UnixMilli, con salto de +1 si dos creaciones caen en el mismo
// milisegundo o el snapshot ya contiene un id mayor.
func (r *AppointmentRedisRepository) nextID(citas []models.Appointment) int64 {
	id := time.Now().UnixMilli()

	for _, c := range citas {
		if c.ID >= id {
			id = c.ID + 1
		}
	}
	if id <= r.lastID {
		id = r.lastID + 1
	}

	r.lastID = id
	return id
}

// --------------------------------------------------
// Repository
// --------------------------------------------------

func (r *AppointmentRedisRepository) List(ctx context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

func (r *AppointmentRedisRepository) Create(ctx context.Context, ap models.Appointment) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	citas, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	ap.ID = r.nextID(citas)
	ap.CreatedAt = time.Now()

	citas = append(citas, ap)
	if err := r.save(ctx, citas); err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentRedisRepository) Update(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	citas, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range citas {
		if citas[i].ID == ap.ID {
			// la fecha de creación nunca se reescribe
			ap.CreatedAt = citas[i].CreatedAt
			citas[i] = *ap
			return r.save(ctx, citas)
		}
	}

	return httperr.ErrBusiness("cita_not_found")
}

func (r *AppointmentRedisRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	citas, err := r.load(ctx)
	if err != nil {
		return err
	}

	out := citas[:0]
	for _, c := range citas {
		if c.ID != id {
			out = append(out, c)
		}
	}

	return r.save(ctx, out)
}
