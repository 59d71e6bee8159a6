package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VerticeInmobiliaria/cita-scheduler/internal/audit"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/httperr"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/httpresp"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/middleware"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/wizard"
)

// ======================================================
// Asistente de agendamiento sobre HTTP
// ======================================================
//
// Cada sesión del asistente vive en el servidor; el panel solo envía
// cambios de campo y transiciones. El estado de vuelta incluye paso,
// formulario y errores visibles.

type WizardHandler struct {
	wizard   *wizard.Wizard
	sessions *wizard.Store
	audit    *audit.Dispatcher
}

func NewWizardHandler(
	wz *wizard.Wizard,
	sessions *wizard.Store,
	audit *audit.Dispatcher,
) *WizardHandler {
	return &WizardHandler{
		wizard:   wz,
		sessions: sessions,
		audit:    audit,
	}
}

// --------- Requests ---------

type SetFieldRequest struct {
	Field string `json:"campo" binding:"required"`
	Value string `json:"valor"`
}

// --------- Helpers ---------

func (h *WizardHandler) session(c *gin.Context) (*wizard.Session, bool) {
	s, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "session_not_found", "La sesión del asistente no existe o ya se cerró.")
		return nil, false
	}
	return s, true
}

// --------- Endpoints ---------

func (h *WizardHandler) Open(c *gin.Context) {
	s := h.sessions.Open()
	c.JSON(http.StatusCreated, s.View())
}

func (h *WizardHandler) Get(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	httpresp.OK(c, s.View())
}

func (h *WizardHandler) SetField(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos no válidos.")
		return
	}

	msg, err := h.wizard.SetField(s, req.Field, req.Value)
	if err != nil {
		httperr.BadRequest(c, "unknown_field", "Campo desconocido: "+req.Field)
		return
	}

	httpresp.OK(c, gin.H{
		"campo":   req.Field,
		"mensaje": msg,
		"sesion":  s.View(),
	})
}

func (h *WizardHandler) Next(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	if err := h.wizard.Next(s); err != nil {
		if fields, ok := httperr.AsValidation(err); ok {
			httperr.UnprocessableEntity(c, "step_blocked", fields)
			return
		}
		writeUsecaseError(c, err)
		return
	}

	httpresp.OK(c, s.View())
}

func (h *WizardHandler) Back(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	h.wizard.Back(s)
	httpresp.OK(c, s.View())
}

// Close descarta la sesión sin enviar (el usuario canceló el
// asistente); el barrido por inactividad cubre las que nunca cierran.
func (h *WizardHandler) Close(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	h.sessions.Drop(s.ID)
	c.Status(http.StatusNoContent)
}

func (h *WizardHandler) Submit(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	s, ok := h.session(c)
	if !ok {
		return
	}

	created, err := h.wizard.Submit(c.Request.Context(), s)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	// sesión consumida: el asistente se cierra tras crear la cita
	h.sessions.Drop(s.ID)

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "cita_creada",
		Entity:   "cita",
		EntityID: &created.ID,
	})

	c.JSON(http.StatusCreated, created)
}
