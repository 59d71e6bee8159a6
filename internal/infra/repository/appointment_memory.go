package repository

import (
	"context"
	"sync"
	"time"

	"github.com/VerticeInmobiliaria/cita-scheduler/internal/httperr"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/models"
)

// AppointmentMemoryRepository replica la semántica del snapshot sin
// Redis. Se inyecta en pruebas y en arranques sin REDIS_URL.
type AppointmentMemoryRepository struct {
	mu     sync.Mutex
	citas  []models.Appointment
	lastID int64
}

func NewAppointmentMemoryRepository() *AppointmentMemoryRepository {
	return &AppointmentMemoryRepository{citas: []models.Appointment{}}
}

func (r *AppointmentMemoryRepository) List(ctx context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Appointment, len(r.citas))
	copy(out, r.citas)
	return out, nil
}

func (r *AppointmentMemoryRepository) Create(ctx context.Context, ap models.Appointment) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id

	ap.ID = id
	ap.CreatedAt = time.Now()
	r.citas = append(r.citas, ap)

	return &ap, nil
}

func (r *AppointmentMemoryRepository) Update(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.citas {
		if r.citas[i].ID == ap.ID {
			ap.CreatedAt = r.citas[i].CreatedAt
			r.citas[i] = *ap
			return nil
		}
	}
	return httperr.ErrBusiness("cita_not_found")
}

func (r *AppointmentMemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.citas[:0]
	for _, c := range r.citas {
		if c.ID != id {
			out = append(out, c)
		}
	}
	r.citas = out
	return nil
}
