package handlers

import (
	"errors"
	"net/http"

	"tripatlas/database/repository/catalog"
	"tripatlas/models"
	"tripatlas/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static plan catalog and registries.
type CatalogHandler struct {
	Repo catalog.Repository
}

func NewCatalogHandler(repo catalog.Repository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

// GetPlans handles GET /api/catalog/plans.
func (h *CatalogHandler) GetPlans(c *gin.Context) {
	plans, err := h.Repo.Plans(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load catalog", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// GetPlanByID handles GET /api/catalog/plans/:id.
func (h *CatalogHandler) GetPlanByID(c *gin.Context) {
	plan, err := h.Repo.PlanByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrPlanNotFound) {
			utils.JSONError(c, http.StatusNotFound, "plan not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load plan", err.Error())
		return
	}
	c.JSON(http.StatusOK, plan)
}

// GetCities handles GET /api/planner/cities.
func (h *CatalogHandler) GetCities(c *gin.Context) {
	cities, err := h.Repo.Cities(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load city registry", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

// GetBookingOptions handles GET /api/booking/options.
func (h *CatalogHandler) GetBookingOptions(c *gin.Context) {
	accoms, err := h.Repo.AccommodationTypes(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load accommodation types", err.Error())
		return
	}
	addOns, err := h.Repo.AddOns(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load add-ons", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.BookingOptions{
		AccommodationTypes: accoms,
		AddOns:             addOns,
	})
}
