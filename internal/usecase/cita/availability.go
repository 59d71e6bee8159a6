package cita

import (
	"context"

	domain "github.com/VerticeInmobiliaria/cita-scheduler/internal/domain/appointment"
)

// Disponibilidad de franjas para una fecha: la lista fija de slots
// menos los ya tomados por citas no canceladas de ese día.
type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]string, error) {

	citas, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	taken := map[string]bool{}
	for _, c := range citas {
		if c.Date == date && c.Status != string(domain.StatusCancelled) {
			taken[c.Time] = true
		}
	}

	var free []string
	for _, s := range domain.SlotsWithMiddayBreak() {
		if !taken[s] {
			free = append(free, s)
		}
	}

	return free, nil
}
