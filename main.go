package main

import (
	"fmt"
	"log"
	"os"

	"therapydesk-backend/config"
	"therapydesk-backend/cosmic"
	"therapydesk-backend/routes"
	"therapydesk-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	store := cosmic.NewClient(cosmic.Config{
		BucketSlug: cfg.BucketSlug,
		ReadKey:    cfg.ReadKey,
		WriteKey:   cfg.WriteKey,
	})

	if os.Getenv("TWILIO_ACCOUNT_SID") != "" {
		services.NewReminderService(store).StartScheduler()
	} else {
		log.Println("TWILIO_ACCOUNT_SID not set, appointment reminders are disabled")
	}

	r := routes.SetupRouter(store)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
