package models

// FormData es el registro editable del asistente de agendamiento:
// los campos de la cita sin id, estado ni fecha de creación.
type FormData struct {
	ClientName     string `json:"cliente"`
	Phone          string `json:"telefono"`
	Email          string `json:"email"`
	DocumentType   string `json:"tipoDocumento"`
	DocumentNumber string `json:"numeroDocumento"`
	Date           string `json:"fecha"`
	Time           string `json:"hora"`
	Service        string `json:"servicio"`
	Notes          string `json:"notas"`
}
