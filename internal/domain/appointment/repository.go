package appointment

import (
	"context"

	"github.com/VerticeInmobiliaria/cita-scheduler/internal/models"
)

// Repository es la frontera de persistencia de citas. La implementación
// real reescribe el snapshot completo en cada mutación; la de memoria
// se inyecta en pruebas.
type Repository interface {
	List(ctx context.Context) ([]models.Appointment, error)

	// Create asigna id (token monotónico por orden de creación) y
	// fechaCreacion antes de persistir.
	Create(ctx context.Context, ap models.Appointment) (*models.Appointment, error)

	// Update reemplaza por id. Id inexistente -> error de negocio
	// cita_not_found.
	Update(ctx context.Context, ap *models.Appointment) error

	Delete(ctx context.Context, id int64) error
}
