package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/agendalivre/agenda-api/internal/audit"
	"github.com/agendalivre/agenda-api/internal/calendar"
	"github.com/agendalivre/agenda-api/internal/config"
	"github.com/agendalivre/agenda-api/internal/handlers"
	infraRepo "github.com/agendalivre/agenda-api/internal/infra/repository"
	"github.com/agendalivre/agenda-api/internal/middleware"
	"github.com/agendalivre/agenda-api/internal/payment"
	"github.com/agendalivre/agenda-api/internal/storage"
	ucScheduling "github.com/agendalivre/agenda-api/internal/usecase/scheduling"
)

type Deps struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Config   *config.Config
	Log      zerolog.Logger
	Payments payment.Gateway
	Calendar calendar.Sync
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	db := deps.DB
	cfg := deps.Config

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, deps.Log)

	avatarStore := storage.NewAvatarStore(cfg)

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	getSlotsUC := ucScheduling.NewGetSlots(scheduleRepo)

	createBookingUC := ucScheduling.NewCreateBooking(
		scheduleRepo,
		deps.Payments,
		deps.Calendar,
		auditDispatcher,
		deps.Log,
	)

	replaceAvailabilityUC := ucScheduling.NewReplaceAvailability(
		scheduleRepo,
		auditDispatcher,
	)

	updateStatusUC := ucScheduling.NewUpdateAppointmentStatus(
		scheduleRepo,
		deps.Calendar,
		auditDispatcher,
		deps.Log,
	)

	listAppointmentsByDateUC := ucScheduling.NewListAppointmentsByDate(
		scheduleRepo,
	)

	listAppointmentsByMonthUC := ucScheduling.NewListAppointmentsByMonth(
		scheduleRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	avatarHandler := handlers.NewAvatarHandler(db, avatarStore)

	serviceHandler := handlers.NewServiceHandler(db)
	studentHandler := handlers.NewStudentHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(db, replaceAvailabilityUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		updateStatusUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, getSlotsUC, createBookingUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (com rate limit por IP)
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.RateLimit(deps.Redis, cfg.PublicRateLimit, time.Minute, deps.Log))
		{
			publicAPI.GET("/:slug", publicHandler.GetProfile)
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/slots", publicHandler.GetSlots)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.POST("/me/avatar", avatarHandler.Upload)

			secured.GET("/me/students", studentHandler.List)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/availability", availabilityHandler.Get)
			secured.PUT("/me/availability", availabilityHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/status", appointmentHandler.UpdateStatus)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
