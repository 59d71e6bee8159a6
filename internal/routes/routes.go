package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/VerticeInmobiliaria/cita-scheduler/internal/audit"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/config"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/handlers"
	infraRepo "github.com/VerticeInmobiliaria/cita-scheduler/internal/infra/repository"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/middleware"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/timezone"
	ucCita "github.com/VerticeInmobiliaria/cita-scheduler/internal/usecase/cita"
	"github.com/VerticeInmobiliaria/cita-scheduler/internal/wizard"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger zerolog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	citaRepo := infraRepo.NewAppointmentRedisRepository(rdb, logger)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	// reloj de negocio: todas las reglas de fecha corren en la zona
	// configurada de la inmobiliaria
	now := func() time.Time { return timezone.NowIn(cfg.Timezone) }

	// ======================================================
	// CASOS DE USO — CITAS
	// ======================================================
	createCitaUC := ucCita.NewCreateCita(citaRepo, auditDispatcher, now)
	updateCitaUC := ucCita.NewUpdateCita(citaRepo, auditDispatcher)
	deleteCitaUC := ucCita.NewDeleteCita(citaRepo, auditDispatcher)
	changeStatusUC := ucCita.NewChangeStatus(citaRepo, auditDispatcher)
	listCitasUC := ucCita.NewListCitas(citaRepo)
	availabilityUC := ucCita.NewGetAvailability(citaRepo)

	// ======================================================
	// ASISTENTE DE AGENDAMIENTO
	// ======================================================
	wizardCtrl := wizard.New(citaRepo, now)
	wizardSessions := wizard.NewStore()

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	citaHandler := handlers.NewCitaHandler(
		createCitaUC,
		updateCitaUC,
		deleteCitaUC,
		changeStatusUC,
		listCitasUC,
		availabilityUC,
	)

	wizardHandler := handlers.NewWizardHandler(
		wizardCtrl,
		wizardSessions,
		auditDispatcher,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA (panel)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// CITAS
			// ------------------------------
			secured.GET("/me/citas", citaHandler.List)
			secured.POST("/me/citas", citaHandler.Create)
			secured.PUT("/me/citas/:id", citaHandler.Update)
			secured.PATCH("/me/citas/:id/estado", citaHandler.ChangeStatus)
			secured.DELETE("/me/citas/:id", citaHandler.Delete)
			secured.GET("/me/citas/disponibilidad", citaHandler.Availability)

			// ------------------------------
			// ASISTENTE (wizard de 4 pasos)
			// ------------------------------
			secured.POST("/wizard", wizardHandler.Open)
			secured.GET("/wizard/:id", wizardHandler.Get)
			secured.PATCH("/wizard/:id/fields", wizardHandler.SetField)
			secured.POST("/wizard/:id/next", wizardHandler.Next)
			secured.POST("/wizard/:id/back", wizardHandler.Back)
			secured.POST("/wizard/:id/submit", wizardHandler.Submit)
			secured.DELETE("/wizard/:id", wizardHandler.Close)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
