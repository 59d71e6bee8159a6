package cita

import (
	"context"

	"github.com/VerticeInmobiliaria/cita-scheduler/internal/audit"
	domain "github.com/VerticeInmobiliaria/cita-scheduler/internal/domain/appointment"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/httperr"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/models"
)

// Cambio directo de estado desde la fila de la tabla del panel.
type ChangeStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	userID uint,
	id int64,
	to domain.Status,
) (*models.Appointment, error) {

	citas, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var ap *models.Appointment
	for i := range citas {
		if citas[i].ID == id {
			ap = &citas[i]
			break
		}
	}
	if ap == nil {
		return nil, httperr.ErrBusiness("cita_not_found")
	}

	if err := domain.ChangeStatus(ap, to); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "estado_cambiado",
		Entity:   "cita",
		EntityID: &id,
		Metadata: map[string]string{"estado": string(to)},
	})

	return ap, nil
}
