package appointment

import (
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/httperr"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/models"
)

// ===============================
// Acciones de dominio
// ===============================

// FromForm arma el registro de cita a partir del formulario. El id y la
// fecha de creación los asigna el repositorio.
func FromForm(form models.FormData, status Status) models.Appointment {
	return models.Appointment{
		ClientName:     form.ClientName,
		Phone:          form.Phone,
		Email:          form.Email,
		DocumentType:   form.DocumentType,
		DocumentNumber: form.DocumentNumber,
		Date:           form.Date,
		Time:           form.Time,
		Service:        form.Service,
		Notes:          form.Notes,
		Status:         string(status),
	}
}

// ChangeStatus aplica un cambio directo de estado desde el panel. No
// hay orden de flujo forzado entre estados.
func ChangeStatus(ap *models.Appointment, to Status) error {
	if !IsValidStatus(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	ap.Status = string(to)
	return nil
}
