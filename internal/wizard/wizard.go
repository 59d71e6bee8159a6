package wizard

import (
	"context"
	"sync"
	"time"

	domain "github.com/VerticeInmobiliaria/cita-scheduler/internal/domain/appointment"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/httperr"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/models"
)

// ======================================================
// Asistente de agendamiento (máquina de estados)
// ======================================================
//
// Paso 1 (Cliente) -> Paso 2 (Fecha y hora) -> Paso 3 (Detalle) ->
// Paso 4 (Resumen). Lineal, bidireccional, sin saltos. El avance desde
// el paso N revalida todos los campos del paso; el envío final revalida
// la unión de todos los pasos.

type Step int

const (
	StepCustomer Step = iota + 1
	StepDateTime
	StepDetails
	StepSummary
)

// Claves de campo: coinciden con los nombres persistidos del registro.
const (
	FieldClientName     = "cliente"
	FieldPhone          = "telefono"
	FieldEmail          = "email"
	FieldDocumentType   = "tipoDocumento"
	FieldDocumentNumber = "numeroDocumento"
	FieldDate           = "fecha"
	FieldTime           = "hora"
	FieldService        = "servicio"
	FieldNotes          = "notas"
)

// stepFields define qué campos son dueños de cada paso. Las notas son
// opcionales y no llevan validador.
var stepFields = map[Step][]string{
	StepCustomer: {FieldClientName, FieldPhone, FieldEmail, FieldDocumentType, FieldDocumentNumber},
	StepDateTime: {FieldDate, FieldTime},
	StepDetails:  {FieldService, FieldNotes},
	StepSummary:  nil,
}

// Session es el estado vivo de un asistente: paso actual, formulario y
// errores visibles por campo. Las mutaciones pasan por el mutex: gin
// atiende en paralelo y dos requests pueden llegar con el mismo id.
type Session struct {
	mu sync.Mutex

	ID     string            `json:"id"`
	Step   Step              `json:"paso"`
	Form   models.FormData   `json:"formulario"`
	Errors map[string]string `json:"errores"`

	lastSeen time.Time
}

// View es la copia serializable del estado, tomada bajo el mutex.
// Es lo que viaja en las respuestas HTTP.
type View struct {
	ID     string            `json:"id"`
	Step   Step              `json:"paso"`
	Form   models.FormData   `json:"formulario"`
	Errors map[string]string `json:"errores"`
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	errs := make(map[string]string, len(s.Errors))
	for f, msg := range s.Errors {
		errs[f] = msg
	}

	return View{
		ID:     s.ID,
		Step:   s.Step,
		Form:   s.Form,
		Errors: errs,
	}
}

func (s *Session) reset() {
	s.Step = StepCustomer
	s.Form = models.FormData{}
	s.Errors = map[string]string{}
}

// Wizard orquesta las sesiones contra el repositorio de citas.
type Wizard struct {
	repo domain.Repository
	now  func() time.Time
}

func New(repo domain.Repository, now func() time.Time) *Wizard {
	if now == nil {
		now = time.Now
	}
	return &Wizard{repo: repo, now: now}
}

// --------------------------------------------------
// Campos
// --------------------------------------------------

// SetField actualiza un campo del formulario y lo revalida de
// inmediato. El par tipo/número de documento está acoplado: cambiar
// cualquiera de los dos revalida el número con el tipo vigente.
func (w *Wizard) SetField(s *Session, field, value string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case FieldClientName:
		s.Form.ClientName = value
	case FieldPhone:
		s.Form.Phone = value
	case FieldEmail:
		s.Form.Email = value
	case FieldDocumentType:
		s.Form.DocumentType = value
	case FieldDocumentNumber:
		s.Form.DocumentNumber = value
	case FieldDate:
		s.Form.Date = value
	case FieldTime:
		s.Form.Time = value
	case FieldService:
		s.Form.Service = value
	case FieldNotes:
		s.Form.Notes = value
	default:
		return "", httperr.ErrBusiness("unknown_field")
	}

	msg := w.validateField(s.Form, field)
	w.recordError(s, field, msg)

	if field == FieldDocumentType && (s.Form.DocumentNumber != "" || s.Errors[FieldDocumentNumber] != "") {
		w.recordError(s, FieldDocumentNumber, w.validateField(s.Form, FieldDocumentNumber))
	}

	return msg, nil
}

func (w *Wizard) recordError(s *Session, field, msg string) {
	if s.Errors == nil {
		s.Errors = map[string]string{}
	}
	if msg == "" {
		delete(s.Errors, field)
		return
	}
	s.Errors[field] = msg
}

// validateField enruta al validador de dominio del campo. Única fuente
// de los predicados para los tres puntos de invocación.
func (w *Wizard) validateField(form models.FormData, field string) string {
	switch field {
	case FieldClientName:
		return domain.ValidateName(form.ClientName)
	case FieldPhone:
		return domain.ValidatePhone(form.Phone)
	case FieldEmail:
		return domain.ValidateEmail(form.Email)
	case FieldDocumentType:
		return domain.ValidateDocumentType(form.DocumentType)
	case FieldDocumentNumber:
		return domain.ValidateDocumentNumber(form.DocumentNumber, form.DocumentType)
	case FieldDate:
		return domain.ValidateDate(form.Date, w.now())
	case FieldTime:
		return domain.ValidateTime(form.Time)
	case FieldService:
		return domain.ValidateService(form.Service)
	}
	return ""
}

func (w *Wizard) validateStep(form models.FormData, step Step) map[string]string {
	errs := map[string]string{}
	for _, f := range stepFields[step] {
		if msg := w.validateField(form, f); msg != "" {
			errs[f] = msg
		}
	}
	return errs
}

// --------------------------------------------------
// Transiciones
// --------------------------------------------------

// Next avanza un paso. El avance se bloquea si algún campo del paso
// actual falla; en ese caso todos los mensajes del paso quedan
// visibles en la sesión y se devuelven como ValidationError.
func (w *Wizard) Next(s *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Step >= StepSummary {
		return httperr.ErrBusiness("last_step")
	}

	if errs := w.validateStep(s.Form, s.Step); len(errs) > 0 {
		for f, msg := range errs {
			w.recordError(s, f, msg)
		}
		return httperr.ErrValidation(errs)
	}

	s.Step++
	return nil
}

func (w *Wizard) Back(s *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Step > StepCustomer {
		s.Step--
	}
}

// Submit es la transición terminal, disponible solo en el paso 4.
// Revalida la unión de los campos de todos los pasos; si todo pasa,
// construye la cita, delega en el repositorio y reinicia la sesión.
func (w *Wizard) Submit(ctx context.Context, s *Session) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Step != StepSummary {
		return nil, httperr.ErrBusiness("wizard_not_on_summary")
	}

	errs := map[string]string{}
	for step := StepCustomer; step < StepSummary; step++ {
		for f, msg := range w.validateStep(s.Form, step) {
			errs[f] = msg
		}
	}
	if len(errs) > 0 {
		for f, msg := range errs {
			w.recordError(s, f, msg)
		}
		return nil, httperr.ErrValidation(errs)
	}

	ap := domain.FromForm(s.Form, domain.InitialStatus())

	created, err := w.repo.Create(ctx, ap)
	if err != nil {
		return nil, err
	}

	s.reset()
	return created, nil
}
