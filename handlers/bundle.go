package handlers

import (
	"net/http"

	"tripatlas/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle collects every endpoint handler the router needs, assembled
// once in main.
type HandlerBundle struct {
	// Planner endpoints.
	GenerateRecommendations gin.HandlerFunc
	GetCities               gin.HandlerFunc

	// Catalog endpoints.
	GetPlans    gin.HandlerFunc
	GetPlanByID gin.HandlerFunc

	// Booking endpoints.
	GetBookingOptions gin.HandlerFunc
	InitiateSession   gin.HandlerFunc
	UpdateSession     gin.HandlerFunc
	ConfirmBooking    gin.HandlerFunc
	CancelSession     gin.HandlerFunc

	// Cart endpoints.
	CartCheckout gin.HandlerFunc
}

// HealthHandler reports the latest dependency health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
