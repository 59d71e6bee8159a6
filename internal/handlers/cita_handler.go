package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/VerticeInmobiliaria/cita-scheduler/internal/domain/appointment"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/dto"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/httperr"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/httpresp"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/middleware"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/models"
	ucCita "github.com/VerticeInmobiliaria/cita-scheduler/internal/usecase/cita"
)

// ======================================================
// HANDLER
// ======================================================

type CitaHandler struct {
	createUC *ucCita.CreateCita
	updateUC *ucCita.UpdateCita
	deleteUC *ucCita.DeleteCita
	statusUC *ucCita.ChangeStatus
	listUC   *ucCita.ListCitas
	availUC  *ucCita.GetAvailability
}

func NewCitaHandler(
	createUC *ucCita.CreateCita,
	updateUC *ucCita.UpdateCita,
	deleteUC *ucCita.DeleteCita,
	statusUC *ucCita.ChangeStatus,
	listUC *ucCita.ListCitas,
	availUC *ucCita.GetAvailability,
) *CitaHandler {
	return &CitaHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		statusUC: statusUC,
		listUC:   listUC,
		availUC:  availUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Los campos no llevan binding:required a propósito: los mensajes por
// campo salen de los validadores de dominio, no del binder.
type CitaFormRequest struct {
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

type UpdateCitaRequest struct {
	CitaFormRequest
	Status string `json:"estado"`
}

type ChangeStatusRequest struct {
	Status string `json:"estado" binding:"required"`
}

func (r CitaFormRequest) toForm() models.FormData {
	return models.FormData{
		ClientName:     r.ClientName,
		Phone:          r.Phone,
		Email:          r.Email,
		DocumentType:   r.DocumentType,
		DocumentNumber: r.DocumentNumber,
		Date:           r.Date,
		Time:           r.Time,
		Service:        r.Service,
		Notes:          r.Notes,
	}
}

// ======================================================
// HELPERS
// ======================================================

// writeUsecaseError traduce los errores del caso de uso: errores de
// validación con su mapa campo -> mensaje, errores de negocio con su
// código, y cualquier otra falla con el texto crudo para que el panel
// lo muestre en la notificación de reintento.
func writeUsecaseError(c *gin.Context, err error) {
	if fields, ok := httperr.AsValidation(err); ok {
		httperr.UnprocessableEntity(c, "validation_failed", fields)
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		switch be.Code {
		case "cita_not_found":
			httperr.NotFound(c, be.Code, "Cita no encontrada.")
		default:
			httperr.BadRequest(c, be.Code, "Operación no válida.")
		}
		return
	}

	httperr.Internal(c, "operation_failed", err.Error())
}

func parseCitaID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador de cita no válido.")
		return 0, false
	}
	return id, true
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *CitaHandler) List(c *gin.Context) {
	citas, err := h.listUC.Execute(c.Request.Context(), c.Query("fecha"))
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	out := make([]dto.CitaListDTO, 0, len(citas))
	for _, ap := range citas {
		out = append(out, dto.CitaListDTO{
			ID:         ap.ID,
			ClientName: ap.ClientName,
			Date:       ap.Date,
			Time:       ap.Time,
			Service:    ap.Service,
			Status:     ap.Status,
			CreatedAt:  ap.CreatedAt,
		})
	}

	httpresp.List(c, out)
}

func (h *CitaHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CitaFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos no válidos.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), userID, req.toForm())
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *CitaHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseCitaID(c)
	if !ok {
		return
	}

	var req UpdateCitaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos no válidos.")
		return
	}

	ap := domain.FromForm(req.toForm(), domain.Status(req.Status))
	ap.ID = id

	updated, err := h.updateUC.Execute(c.Request.Context(), userID, ap)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	httpresp.OK(c, updated)
}

func (h *CitaHandler) ChangeStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseCitaID(c)
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos no válidos.")
		return
	}

	updated, err := h.statusUC.Execute(c.Request.Context(), userID, id, domain.Status(req.Status))
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	httpresp.OK(c, updated)
}

func (h *CitaHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseCitaID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, id); err != nil {
		writeUsecaseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CitaHandler) Availability(c *gin.Context) {
	date := c.Query("fecha")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Indica la fecha a consultar.")
		return
	}

	slots, err := h.availUC.Execute(c.Request.Context(), date)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"fecha": date, "disponibles": slots})
}
