package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-booking-server/internal/config"
	"hospital-booking-server/internal/gemini"
	"hospital-booking-server/internal/handlers"
	"hospital-booking-server/internal/middleware"
	"hospital-booking-server/internal/recaptcha"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// External collaborators
	verifier := recaptcha.NewVerifier(cfg.Recaptcha.Secret, cfg.Recaptcha.VerifyURL, cfg.Recaptcha.Timeout)
	assistant := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Timeout)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(db, cfg, verifier)
	hospitalHandler := handlers.NewHospitalHandler(db, cfg, verifier)
	doctorHandler := handlers.NewDoctorHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(db)
	firstAidHandler := handlers.NewFirstAidHandler(db, assistant)

	api := router.Group("/api")

	// Account registration and login are always public
	api.POST("/users/register", userHandler.Register)
	api.POST("/users/login", userHandler.Login)
	api.GET("/users/:id", userHandler.GetUser)

	api.POST("/hospitals/register", hospitalHandler.Register)
	api.POST("/hospitals/login", hospitalHandler.Login)
	api.GET("/hospitals/:id", hospitalHandler.GetHospital)

	api.GET("/doctors/search", doctorHandler.SearchDoctors)

	api.POST("/appointments", appointmentHandler.CreateAppointment)
	api.GET("/appointments", appointmentHandler.ListAppointments)
	api.GET("/appointments/today", appointmentHandler.ListTodayAppointments)

	api.POST("/firstaid", firstAidHandler.Exchange)

	// Mutating routes sit behind the capability-gated auth middleware;
	// with AUTH_REQUIRED off it passes requests straight through.
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg))
	{
		authed.PUT("/users/:id", userHandler.UpdateUser)
		authed.PUT("/hospitals/:id", hospitalHandler.UpdateHospital)
		authed.PUT("/doctors/:id", doctorHandler.UpdateDoctor)
		authed.PUT("/appointments/:id/cancel", appointmentHandler.CancelAppointment)
		authed.PUT("/appointments/:id/get-in", appointmentHandler.GetInAppointment)
		authed.PUT("/appointments/:id/complete", appointmentHandler.CompleteAppointment)
	}

	// Liveness endpoint
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})
}
