package planner

import (
	"context"
	"time"

	"tripatlas/config"
	"tripatlas/database/repository/catalog"
	"tripatlas/models"

	"go.uber.org/zap"
)

// RecommendationService turns a traveler's preferences into a ranked, priced
// list of trip plans.
type RecommendationService interface {
	GenerateRecommendations(ctx context.Context, prefs models.TravelPreferences) ([]models.ScoredPlan, error)
}

// DefaultRecommendationService implements RecommendationService.
type DefaultRecommendationService struct {
	Catalog catalog.Repository
	Rules   config.EngineRules
	Prices  *PriceGenerator
	Logger  *zap.Logger

	// ThinkingDelay is the artificial wait before results are presented.
	// Zero disables it (tests).
	ThinkingDelay time.Duration
}
