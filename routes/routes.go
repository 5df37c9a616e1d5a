package routes

import (
	"os"
	"strings"

	"salon-booking-backend/config"
	"salon-booking-backend/controllers"
	"salon-booking-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
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

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	{
		// Public catalog and availability routes used by the booking wizard
		api.GET("/services", controllers.GetActiveServices)
		api.GET("/staff", controllers.GetBookableStaff)
		api.GET("/availability", controllers.GetAvailability)

		// Booking routes require a signed-in customer
		bookings := api.Group("/bookings")
		bookings.Use(utils.AuthMiddleware())
		{
			bookings.POST("", controllers.CreateBooking)
			bookings.GET("", controllers.GetMyBookings)
		}

		// Admin console
		admin := api.Group("/admin")
		admin.Use(utils.AuthMiddleware(), utils.AdminMiddleware())
		{
			services := admin.Group("/services")
			{
				services.POST("", controllers.CreateService)
				services.GET("", controllers.GetServices)
				services.GET("/:id", controllers.GetService)
				services.PUT("/:id", controllers.UpdateService)
				services.DELETE("/:id", controllers.DeleteService)
			}

			staff := admin.Group("/staff")
			{
				staff.GET("", controllers.GetAllStaff)
				staff.POST("", controllers.CreateStaff)
				staff.PUT("/:id", controllers.UpdateStaff)
				staff.DELETE("/:id", controllers.DeleteStaff)
				staff.POST("/:id/services/:serviceId", controllers.AssignService)
				staff.DELETE("/:id/services/:serviceId", controllers.UnassignService)
			}

			slots := admin.Group("/time-slots")
			{
				slots.GET("", controllers.GetTimeSlots)
				slots.POST("", controllers.CreateTimeSlot)
				slots.POST("/bulk", controllers.BulkCreateTimeSlots)
				slots.PUT("/:id", controllers.UpdateTimeSlot)
				slots.DELETE("/:id", controllers.DeleteTimeSlot)
			}

			admin.GET("/bookings", controllers.GetBookings)
			admin.PUT("/bookings/:id/status", controllers.UpdateBookingStatus)

			admin.GET("/dashboard", controllers.GetDashboardOverview)
		}
	}

	return r
}
