package dto

import "time"

// Fila de la tabla de citas del panel.
type CitaListDTO struct {
	ID         int64     `json:"id"`
	ClientName string    `json:"cliente"`
	Date       string    `json:"fecha"`
	Time       string    `json:"hora"`
	Service    string    `json:"servicio"`
	Status     string    `json:"estado"`
	CreatedAt  time.Time `json:"fechaCreacion"`
}
