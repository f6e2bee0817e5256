package routes

import (
	"time"

	"tripatlas/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	planner := r.Group("/api/planner")
	{
		planner.POST("/recommendations", hb.GenerateRecommendations)
		planner.GET("/cities", hb.GetCities)
	}

	catalog := r.Group("/api/catalog")
	{
		catalog.GET("/plans", hb.GetPlans)
		catalog.GET("/plans/:id", hb.GetPlanByID)
	}

	booking := r.Group("/api/booking")
	{
		booking.GET("/options", hb.GetBookingOptions)
		booking.POST("/session", hb.InitiateSession)            // Phase 1: Start session
		booking.PUT("/session/:sessionID", hb.UpdateSession)    // Phase 2: Update selection
		booking.POST("/confirm", hb.ConfirmBooking)             // Phase 3: Confirm booking
		booking.DELETE("/session/:sessionID", hb.CancelSession) // Abandon
	}

	cartGroup := r.Group("/api/cart")
	{
		cartGroup.POST("/checkout", hb.CartCheckout)
	}
}
