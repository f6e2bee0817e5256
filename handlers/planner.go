package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"tripatlas/models"
	"tripatlas/services/planner"
	"tripatlas/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlannerHandler exposes the recommendation engine.
type PlannerHandler struct {
	Service planner.RecommendationService
	Logger  *zap.Logger
}

func NewPlannerHandler(svc planner.RecommendationService, logger *zap.Logger) *PlannerHandler {
	return &PlannerHandler{Service: svc, Logger: logger}
}

// GenerateRecommendations handles POST /api/planner/recommendations. The
// preference snapshot arrives fully assembled; the engine never reads live
// form state.
func (h *PlannerHandler) GenerateRecommendations(c *gin.Context) {
	var prefs models.TravelPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid preferences payload", err.Error())
		return
	}

	plans, err := h.Service.GenerateRecommendations(c.Request.Context(), prefs)
	if err != nil {
		if c.Request.Context().Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Client went away; result is simply discarded.
			c.Abort()
			return
		}
		h.Logger.Error("recommendation generation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate recommendations", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.RecommendationResponse{
		Plans:       plans,
		GeneratedAt: time.Now().Format(time.RFC3339),
	})
}
