package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/agendly/booking-api/internal/audit"
	"github.com/agendly/booking-api/internal/cache"
	"github.com/agendly/booking-api/internal/config"
	"github.com/agendly/booking-api/internal/handlers"
	infraRepo "github.com/agendly/booking-api/internal/infra/repository"
	"github.com/agendly/booking-api/internal/middleware"
	ucBooking "github.com/agendly/booking-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	availCache *cache.AvailabilityCache,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		availCache,
		auditDispatcher,
		cfg.Timezone,
	)

	updateAppointmentUC := ucBooking.NewUpdateAppointment(
		bookingRepo,
		availCache,
		auditDispatcher,
		cfg.Timezone,
	)

	transitionAppointmentUC := ucBooking.NewTransitionAppointment(
		bookingRepo,
		availCache,
		auditDispatcher,
		cfg.Timezone,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		availCache,
	)

	listByDateUC := ucBooking.NewListAppointmentsByDate(bookingRepo, cfg.Timezone)
	listByMonthUC := ucBooking.NewListAppointmentsByMonth(bookingRepo, cfg.Timezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	serviceHandler := handlers.NewServiceHandler(db, availCache, auditDispatcher)
	businessHoursHandler := handlers.NewBusinessHoursHandler(db, availCache, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		updateAppointmentUC,
		transitionAppointmentUC,
		listByDateUC,
		listByMonthUC,
		cfg.Timezone,
	)

	publicHandler := handlers.NewPublicHandler(
		db,
		availabilityUC,
		createAppointmentUC,
		cfg.Timezone,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICA (fluxo de booking)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/business-hours", publicHandler.GetBusinessHours)
			publicAPI.GET("/available-times", publicHandler.AvailableTimes)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVADA (dashboard)
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/business-hours", businessHoursHandler.Get)
			secured.PUT("/business-hours", businessHoursHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/appointments/:id/no-show", appointmentHandler.NoShow)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
