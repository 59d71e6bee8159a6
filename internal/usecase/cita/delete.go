package cita

import (
	"context"

	"github.com/VerticeInmobiliaria/cita-scheduler/internal/audit"
	domain "github.com/VerticeInmobiliaria/cita-scheduler/internal/domain/appointment"
)

type DeleteCita struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteCita(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteCita {
	return &DeleteCita{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteCita) Execute(
	ctx context.Context,
	userID uint,
	id int64,
) error {

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "cita_eliminada",
		Entity:   "cita",
		EntityID: &id,
	})

	return nil
}
