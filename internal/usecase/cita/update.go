package cita

import (
	"context"

	"github.com/VerticeInmobiliaria/cita-scheduler/internal/audit"
	domain "github.com/VerticeInmobiliaria/cita-scheduler/internal/domain/appointment"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/httperr"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/models"
)

// ======================================================
// Editar cita
// ======================================================
//
// El formulario de edición es deliberadamente más laxo que el
// asistente: acepta fechas pasadas y valida la hora por pertenencia a
// la lista fija de slots. Comportamiento observado del panel original,
// se preserva tal cual. El correo, en cambio, usa la variante estricta.

type UpdateCita struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateCita(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateCita {
	return &UpdateCita{
		repo:  repo,
		audit: audit,
	}
}

func validateEdit(ap models.Appointment) map[string]string {
	errs := map[string]string{}

	check := func(field, msg string) {
		if msg != "" {
			errs[field] = msg
		}
	}

	check("cliente", domain.ValidateName(ap.ClientName))
	check("telefono", domain.ValidatePhone(ap.Phone))
	check("email", domain.ValidateEmailStrict(ap.Email))
	check("tipoDocumento", domain.ValidateDocumentType(ap.DocumentType))
	check("numeroDocumento", domain.ValidateDocumentNumber(ap.DocumentNumber, ap.DocumentType))
	check("fecha", domain.ValidateDateEdit(ap.Date))
	check("hora", domain.ValidateTimeEdit(ap.Time))
	check("servicio", domain.ValidateService(ap.Service))

	if !domain.IsValidStatus(domain.Status(ap.Status)) {
		errs["estado"] = "Estado no válido"
	}

	return errs
}

func (uc *UpdateCita) Execute(
	ctx context.Context,
	userID uint,
	ap models.Appointment,
) (*models.Appointment, error) {

	if errs := validateEdit(ap); len(errs) > 0 {
		return nil, httperr.ErrValidation(errs)
	}

	if err := uc.repo.Update(ctx, &ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "cita_actualizada",
		Entity:   "cita",
		EntityID: &ap.ID,
	})

	return &ap, nil
}
