package routes

import (
	"os"
	"strings"

	"therapydesk-backend/config"
	"therapydesk-backend/controllers"
	"therapydesk-backend/cosmic"
	"therapydesk-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(store *cosmic.Client) *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	authController := controllers.NewAuthController(store)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Appointment routes
		appointmentController := controllers.NewAppointmentController(store)
		appointments := api.Group("/appointments")
		{
			appointments.GET("", appointmentController.GetAppointments)
			appointments.POST("", appointmentController.CreateAppointment)
			appointments.PUT("/:id", appointmentController.UpdateAppointment)
			appointments.DELETE("/:id", appointmentController.DeleteAppointment)
		}

		// Payment routes
		paymentController := controllers.NewPaymentController(store)
		api.GET("/payments", paymentController.GetPayments)

		// Therapist routes
		therapistController := controllers.NewTherapistController(store)
		api.GET("/therapists", therapistController.GetTherapists)

		// Client routes
		clientController := controllers.NewClientController(store)
		api.GET("/clients", clientController.GetClients)

		// Reports routes
		reportController := controllers.NewReportController(store)
		api.GET("/reports", reportController.GetReportAnalytics)
		api.GET("/reports/ranges", reportController.GetDateRanges)

		// Dashboard routes
		dashboardController := controllers.NewDashboardController(store)
		api.GET("/dashboard", dashboardController.GetDashboardOverview)
	}

	return r
}
