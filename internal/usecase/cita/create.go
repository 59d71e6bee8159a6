package cita

import (
	"context"
	"time"

	"github.com/VerticeInmobiliaria/cita-scheduler/internal/audit"
	domain "github.com/VerticeInmobiliaria/cita-scheduler/internal/domain/appointment"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/httperr"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/models"
)

// ======================================================
// Crear cita (formulario directo del panel)
// ======================================================

type CreateCita struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateCita(
	repo domain.Repository,
	audit *audit.Dispatcher,
	now func() time.Time,
) *CreateCita {
	if now == nil {
		now = time.Now
	}
	return &CreateCita{
		repo:  repo,
		audit: audit,
		now:   now,
	}
}

// validateCreate aplica los validadores del flujo de creación sobre el
// formulario completo; devuelve el mapa campo -> mensaje.
func validateCreate(form models.FormData, now time.Time) map[string]string {
	errs := map[string]string{}

	check := func(field, msg string) {
		if msg != "" {
			errs[field] = msg
		}
	}

	check("cliente", domain.ValidateName(form.ClientName))
	check("telefono", domain.ValidatePhone(form.Phone))
	check("email", domain.ValidateEmail(form.Email))
	check("tipoDocumento", domain.ValidateDocumentType(form.DocumentType))
	check("numeroDocumento", domain.ValidateDocumentNumber(form.DocumentNumber, form.DocumentType))
	check("fecha", domain.ValidateDate(form.Date, now))
	check("hora", domain.ValidateTime(form.Time))
	check("servicio", domain.ValidateService(form.Service))

	return errs
}

func (uc *CreateCita) Execute(
	ctx context.Context,
	userID uint,
	form models.FormData,
) (*models.Appointment, error) {

	if errs := validateCreate(form, uc.now()); len(errs) > 0 {
		return nil, httperr.ErrValidation(errs)
	}

	ap := domain.FromForm(form, domain.InitialStatus())

	created, err := uc.repo.Create(ctx, ap)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "cita_creada",
		Entity:   "cita",
		EntityID: &created.ID,
	})

	return created, nil
}
