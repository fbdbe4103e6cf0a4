package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clipline/barber-booking/internal/audit"
	"github.com/clipline/barber-booking/internal/cache"
	"github.com/clipline/barber-booking/internal/config"
	"github.com/clipline/barber-booking/internal/domain/schedule"
	"github.com/clipline/barber-booking/internal/handlers"
	infraRepo "github.com/clipline/barber-booking/internal/infra/repository"
	"github.com/clipline/barber-booking/internal/middleware"
	ucAppointment "github.com/clipline/barber-booking/internal/usecase/appointment"
)

// Deps agrupa o que o main precisa manter vivo fora do ciclo de request
// (a varredura de expiração roda em background com o mesmo use case).
type Deps struct {
	ExpireOverdue *ucAppointment.ExpireOverdue
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) Deps {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	engine := schedule.NewEngine(appointmentRepo, appointmentRepo)
	slots := cache.NewSlotsCache(cfg.RedisAddr)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		engine,
		slots,
		auditDispatcher,
	)

	getAvailabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		engine,
		slots,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		slots,
		auditDispatcher,
	)

	expireOverdueUC := ucAppointment.NewExpireOverdue(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)
	staffHandler := handlers.NewStaffHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db, slots)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		completeAppointmentUC,
		cancelAppointmentUC,
		expireOverdueUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, getAvailabilityUC, createAppointmentUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.GetBarbershop)
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
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

			secured.GET("/me/barbershop", barbershopHandler.GetMeBarbershop)
			secured.PATCH("/me/barbershop", barbershopHandler.UpdateMeBarbershop)

			secured.GET("/me/customers", customerHandler.List)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/staff", staffHandler.List)
			secured.POST("/me/staff", staffHandler.Create)
			secured.PATCH("/me/staff/:id", staffHandler.Update)

			secured.GET("/me/working-hours", workingHoursHandler.Get)
			secured.PUT("/me/working-hours", workingHoursHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.POST("/me/appointments/expire", appointmentHandler.Expire)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}

	return Deps{
		ExpireOverdue: expireOverdueUC,
	}
}
