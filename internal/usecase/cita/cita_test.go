package cita

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VerticeInmobiliaria/cita-scheduler/internal/audit"
	domain "github.com/VerticeInmobiliaria/cita-scheduler/internal/domain/appointment"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/httperr"
	infraRepo "github.com/VerticeInmobiliaria/cita-scheduler/internal/infra/repository"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/models"
)

var fixedNow = time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)

type nopAuditWriter struct{}

func (nopAuditWriter) Log(*uint, string, string, *int64, any) error { return nil }

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopAuditWriter{}, zerolog.Nop())
}

func validForm() models.FormData {
	return models.FormData{
		ClientName:     "Juan Pérez",
		Phone:          "300 123 4567",
		Email:          "juan@test.com",
		DocumentType:   "CC",
		DocumentNumber: "12345678",
		Date:           fixedNow.AddDate(0, 0, 1).Format(domain.DateLayout),
		Time:           "09:00 am",
		Service:        "Avalúos",
	}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func TestCreateCita(t *testing.T) {
	repo := infraRepo.NewAppointmentMemoryRepository()
	uc := NewCreateCita(repo, testDispatcher(), func() time.Time { return fixedNow })

	created, err := uc.Execute(context.Background(), 1, validForm())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusScheduled), created.Status)
	assert.NotZero(t, created.ID)

	citas, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, citas, 1)
}

func TestCreateCitaRejectsInvalidForm(t *testing.T) {
	repo := infraRepo.NewAppointmentMemoryRepository()
	uc := NewCreateCita(repo, testDispatcher(), func() time.Time { return fixedNow })

	form := validForm()
	form.Phone = "123"
	form.Date = fixedNow.AddDate(0, 0, -1).Format(domain.DateLayout)

	_, err := uc.Execute(context.Background(), 1, form)
	require.Error(t, err)

	fields, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, fields, "telefono")
	assert.Contains(t, fields, "fecha")

	citas, _ := repo.List(context.Background())
	assert.Empty(t, citas)
}

// --------------------------------------------------
// Update
// --------------------------------------------------

func TestUpdateCitaAllowsPastDate(t *testing.T) {
	repo := infraRepo.NewAppointmentMemoryRepository()
	createUC := NewCreateCita(repo, testDispatcher(), func() time.Time { return fixedNow })
	updateUC := NewUpdateCita(repo, testDispatcher())

	created, err := createUC.Execute(context.Background(), 1, validForm())
	require.NoError(t, err)

	edited := *created
	// la edición acepta fechas pasadas sin aviso
	edited.Date = fixedNow.AddDate(0, 0, -30).Format(domain.DateLayout)
	edited.Status = string(domain.StatusConfirmed)

	updated, err := updateUC.Execute(context.Background(), 1, edited)
	require.NoError(t, err)
	assert.Equal(t, edited.Date, updated.Date)
}

func TestUpdateCitaStrictEmail(t *testing.T) {
	repo := infraRepo.NewAppointmentMemoryRepository()
	uc := NewUpdateCita(repo, testDispatcher())

	ap := domain.FromForm(validForm(), domain.StatusScheduled)
	ap.ID = 1
	ap.Email = "juan@example.comcom"

	_, err := uc.Execute(context.Background(), 1, ap)
	require.Error(t, err)
	fields, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, fields, "email")
}

func TestUpdateCitaMissingID(t *testing.T) {
	repo := infraRepo.NewAppointmentMemoryRepository()
	uc := NewUpdateCita(repo, testDispatcher())

	ap := domain.FromForm(validForm(), domain.StatusScheduled)
	ap.ID = 4040

	_, err := uc.Execute(context.Background(), 1, ap)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "cita_not_found"))
}

// --------------------------------------------------
// ChangeStatus / Delete
// --------------------------------------------------

func TestChangeStatus(t *testing.T) {
	repo := infraRepo.NewAppointmentMemoryRepository()
	createUC := NewCreateCita(repo, testDispatcher(), func() time.Time { return fixedNow })
	statusUC := NewChangeStatus(repo, testDispatcher())

	created, err := createUC.Execute(context.Background(), 1, validForm())
	require.NoError(t, err)

	// cualquier estado es alcanzable desde cualquier otro
	for _, to := range []domain.Status{
		domain.StatusCompleted,
		domain.StatusScheduled,
		domain.StatusCancelled,
		domain.StatusConfirmed,
	} {
		updated, err := statusUC.Execute(context.Background(), 1, created.ID, to)
		require.NoError(t, err)
		assert.Equal(t, string(to), updated.Status)
	}

	_, err = statusUC.Execute(context.Background(), 1, created.ID, domain.Status("pendiente"))
	require.Error(t, err)

	_, err = statusUC.Execute(context.Background(), 1, 999999, domain.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, "cita_not_found"))
}

func TestDeleteCita(t *testing.T) {
	repo := infraRepo.NewAppointmentMemoryRepository()
	createUC := NewCreateCita(repo, testDispatcher(), func() time.Time { return fixedNow })
	deleteUC := NewDeleteCita(repo, testDispatcher())

	created, err := createUC.Execute(context.Background(), 1, validForm())
	require.NoError(t, err)

	require.NoError(t, deleteUC.Execute(context.Background(), 1, created.ID))

	citas, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, citas)
}

// --------------------------------------------------
// List / Availability
// --------------------------------------------------

func TestListCitasFiltersAndSorts(t *testing.T) {
	repo := infraRepo.NewAppointmentMemoryRepository()
	createUC := NewCreateCita(repo, testDispatcher(), func() time.Time { return fixedNow })
	listUC := NewListCitas(repo)

	day1 := fixedNow.AddDate(0, 0, 1).Format(domain.DateLayout)
	day2 := fixedNow.AddDate(0, 0, 2).Format(domain.DateLayout)

	mk := func(date, slot string) {
		form := validForm()
		form.Date = date
		form.Time = slot
		_, err := createUC.Execute(context.Background(), 1, form)
		require.NoError(t, err)
	}

	mk(day2, "08:00 am")
	mk(day1, "03:00 pm")
	mk(day1, "09:30 am")

	all, err := listUC.Execute(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"09:30 am", "03:00 pm", "08:00 am"},
		[]string{all[0].Time, all[1].Time, all[2].Time})

	onlyDay1, err := listUC.Execute(context.Background(), day1)
	require.NoError(t, err)
	require.Len(t, onlyDay1, 2)
	for _, c := range onlyDay1 {
		assert.Equal(t, day1, c.Date)
	}
}

func TestAvailabilityExcludesTakenSlots(t *testing.T) {
	repo := infraRepo.NewAppointmentMemoryRepository()
	createUC := NewCreateCita(repo, testDispatcher(), func() time.Time { return fixedNow })
	statusUC := NewChangeStatus(repo, testDispatcher())
	availUC := NewGetAvailability(repo)

	date := fixedNow.AddDate(0, 0, 1).Format(domain.DateLayout)

	form := validForm()
	form.Date = date
	form.Time = "09:00 am"
	booked, err := createUC.Execute(context.Background(), 1, form)
	require.NoError(t, err)

	form.Time = "10:00 am"
	cancelled, err := createUC.Execute(context.Background(), 1, form)
	require.NoError(t, err)
	_, err = statusUC.Execute(context.Background(), 1, cancelled.ID, domain.StatusCancelled)
	require.NoError(t, err)

	free, err := availUC.Execute(context.Background(), date)
	require.NoError(t, err)

	assert.NotContains(t, free, booked.Time)
	// las canceladas liberan su franja
	assert.Contains(t, free, "10:00 am")
	// la lista base omite el mediodía
	assert.NotContains(t, free, "12:00 pm")
}
