package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ragtask/handlers"
)

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, chatHandler *handlers.ChatHandler, bookingHandler *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.POST("/chat", chatHandler.HandleChat)
		api.GET("/bookings/:bookingID", bookingHandler.GetBooking)
		api.GET("/sessions/:sessionID/bookings", bookingHandler.ListSessionBookings)
		api.GET("/health", handlers.HealthHandler)
	}
}
