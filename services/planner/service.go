package planner

import (
	"context"
	"fmt"
	"time"

	"tripatlas/models"

	"go.uber.org/zap"
)

// GenerateRecommendations runs the full pipeline: resolve preferred cities,
// inject them into cloned templates, score and filter, attach display prices,
// then hold results for the configured thinking delay. Nonsensical preference
// sets never error; only infrastructure faults and cancellation do.
func (s *DefaultRecommendationService) GenerateRecommendations(ctx context.Context, prefs models.TravelPreferences) ([]models.ScoredPlan, error) {
	plans, err := s.Catalog.Plans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan catalog: %w", err)
	}
	registry, err := s.Catalog.Cities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load city registry: %w", err)
	}

	cities := s.resolveCities(prefs, registry)
	for i, plan := range plans {
		plans[i] = InjectPreferredCities(plan, cities)
	}

	ranked := selectPlans(s.Rules, plans, prefs)

	duration := prefs.TripDurationDays()
	results := make([]models.ScoredPlan, 0, len(ranked))
	for _, rp := range ranked {
		results = append(results, models.ScoredPlan{
			Plan:         rp.plan,
			Score:        rp.score,
			DisplayPrice: s.Prices.DisplayPrice(prefs.BudgetTier),
			DurationDays: duration,
			Fallback:     rp.fallback,
		})
	}

	if s.Logger != nil {
		s.Logger.Debug("generated recommendations",
			zap.Int("candidates", len(plans)),
			zap.Int("returned", len(results)),
			zap.Int("groupSize", prefs.NormalizedGroupSize()),
			zap.String("budgetTier", prefs.BudgetTier),
		)
	}

	// Simulated thinking time. Nothing is persisted mid-flight, so a
	// cancelled request simply discards the computed results.
	if s.ThinkingDelay > 0 {
		select {
		case <-time.After(s.ThinkingDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return results, nil
}
