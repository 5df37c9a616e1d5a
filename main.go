package main

import (
	"fmt"
	"log"
	"os"

	"salon-booking-backend/config"
	"salon-booking-backend/models"
	"salon-booking-backend/routes"
	"salon-booking-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Staff{},
		&models.StaffService{},
		&models.TimeSlot{},
		&models.Booking{},
		&models.Notification{},
	)
}

func main() {
	notifier := services.NewNotificationService(config.DB)
	notifier.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
