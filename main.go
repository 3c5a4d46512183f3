package main

import (
	"fmt"
	"time"

	"subtrackr-backend/config"
	"subtrackr-backend/models"
	"subtrackr-backend/routes"
	"subtrackr-backend/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Log.Fatalf("Failed to load configuration: %v", err)
	}
	config.InitLogger(cfg)

	config.ConnectDB(cfg)
	config.DB.AutoMigrate(
		&models.User{},
		&models.Subscription{},
		&models.ReminderLog{},
	)

	sendTimeout := time.Duration(cfg.SendTimeoutSeconds) * time.Second

	mailer := services.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, sendTimeout)

	var sms services.Transport
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		sms = services.NewSMSSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, sendTimeout)
	}

	reminderService := services.NewReminderService(
		services.NewGormStore(config.DB),
		mailer,
		sms,
		cfg.ReminderLeadDays,
		cfg.ReminderHourUTC,
		cfg.ReminderWorkers,
		config.Log,
	)
	if err := reminderService.StartScheduler(); err != nil {
		config.Log.Fatalf("Failed to start reminder scheduler: %v", err)
	}
	defer reminderService.Stop()

	r := routes.SetupRouter(reminderService)
	printRoutes(r)
	if err := r.Run(":" + cfg.Port); err != nil {
		config.Log.Fatalf("Server exited: %v", err)
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
