package cita

import (
	"context"
	"sort"

	domain "github.com/VerticeInmobiliaria/cita-scheduler/internal/domain/appointment"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/models"
)

// Listado para la tabla y el calendario del panel, con filtro opcional
// por fecha y orden estable fecha + hora.
type ListCitas struct {
	repo domain.Repository
}

func NewListCitas(repo domain.Repository) *ListCitas {
	return &ListCitas{repo: repo}
}

func (uc *ListCitas) Execute(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	citas, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Appointment, 0, len(citas))
	for _, c := range citas {
		if date != "" && c.Date != date {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		hi, _ := domain.ParseSlot(out[i].Time)
		hj, _ := domain.ParseSlot(out[j].Time)
		return hi < hj
	})

	return out, nil
}
