package routes

import (
	"subtrackr-backend/config"
	"subtrackr-backend/controllers"
	"subtrackr-backend/services"
	"subtrackr-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(reminderService *services.ReminderService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.GET("/profile", controllers.GetProfile)
		auth.PUT("/profile", controllers.UpdateProfile)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Subscription routes
		subscriptions := api.Group("/subscriptions")
		{
			subscriptions.POST("", controllers.CreateSubscription)
			subscriptions.GET("", controllers.GetSubscriptions)
			subscriptions.GET("/:id", controllers.GetSubscription)
			subscriptions.PUT("/:id", controllers.UpdateSubscription)
			subscriptions.DELETE("/:id", controllers.DeleteSubscription)
		}

		// Reminder routes
		reminderController := controllers.ReminderController{Service: reminderService}
		reminders := api.Group("/reminders")
		{
			reminders.POST("/run", reminderController.RunNow)
			reminders.GET("/status", reminderController.Status)
			reminders.GET("/logs", reminderController.GetLogs)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
