package models

import "time"

// Cita como se persiste en el snapshot (nombres de campo en español,
// compatibles con los registros ya almacenados).
type Appointment struct {
	ID int64 `json:"id"`

	ClientName     string `json:"cliente"`
	Phone          string `json:"telefono"`
	Email          string `json:"email"`
	DocumentType   string `json:"tipoDocumento"`
	DocumentNumber string `json:"numeroDocumento"`

	Date    string `json:"fecha"` // YYYY-MM-DD
	Time    string `json:"hora"`  // "09:00 am"
	Service string `json:"servicio"`
	Notes   string `json:"notas"`

	Status string `json:"estado"`

	CreatedAt time.Time `json:"fechaCreacion"`
}
