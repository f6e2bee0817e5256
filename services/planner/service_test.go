package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	catalogRepo "tripatlas/database/repository/catalog"
	"tripatlas/models"

	"go.uber.org/zap"
)

func newTestService(delay time.Duration) *DefaultRecommendationService {
	rules := testRules()
	return &DefaultRecommendationService{
		Catalog:       catalogRepo.NewMemoryCatalogRepo(),
		Rules:         rules,
		Prices:        NewSeededPriceGenerator(rules, 1),
		Logger:        zap.NewNop(),
		ThinkingDelay: delay,
	}
}

func TestGenerateRecommendationsNatureStandardDuo(t *testing.T) {
	svc := newTestService(0)
	prefs := models.TravelPreferences{
		Interests:  []string{"nature"},
		BudgetTier: "standard",
		GroupSize:  2,
	}

	plans, err := svc.GenerateRecommendations(context.Background(), prefs)
	if err != nil {
		t.Fatalf("GenerateRecommendations: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("got %d plans, want 3", len(plans))
	}
	if plans[0].Plan.ID != "nature-ultimate" {
		t.Errorf("top plan = %s, want nature-ultimate", plans[0].Plan.ID)
	}
	for _, sp := range plans {
		if sp.DisplayPrice < 16000 || sp.DisplayPrice > 18000 {
			t.Errorf("plan %s price %d outside standard band [16000, 18000]", sp.Plan.ID, sp.DisplayPrice)
		}
	}
}

func TestGenerateRecommendationsZeroInterestsReturnsThree(t *testing.T) {
	svc := newTestService(0)
	prefs := models.TravelPreferences{BudgetTier: "luxury", GroupSize: 4}

	plans, err := svc.GenerateRecommendations(context.Background(), prefs)
	if err != nil {
		t.Fatalf("GenerateRecommendations: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("got %d plans, want exactly 3 via fallback", len(plans))
	}
	for _, sp := range plans {
		if !sp.Fallback {
			t.Errorf("plan %s should be flagged as fallback", sp.Plan.ID)
		}
	}
}

func TestGenerateRecommendationsInjectsPreferredCities(t *testing.T) {
	svc := newTestService(0)
	prefs := models.TravelPreferences{
		Interests:        []string{"adventure", "caving"},
		BudgetTier:       "premium",
		GroupSize:        3,
		PreferredCityIDs: []int{3, 3, 5}, // Dawki twice, Jowai
	}

	plans, err := svc.GenerateRecommendations(context.Background(), prefs)
	if err != nil {
		t.Fatalf("GenerateRecommendations: %v", err)
	}
	top := plans[0]
	if top.Plan.ID != "adventure-extreme" {
		t.Fatalf("top plan = %s, want adventure-extreme", top.Plan.ID)
	}
	if top.Plan.Destinations[0].Name != "Dawki" || top.Plan.Destinations[1].Name != "Jowai" {
		t.Errorf("injected cities = %s, %s; want Dawki, Jowai",
			top.Plan.Destinations[0].Name, top.Plan.Destinations[1].Name)
	}
	dawkiCount := 0
	for _, d := range top.Plan.Destinations {
		if d.Name == "Dawki" {
			dawkiCount++
		}
	}
	if dawkiCount != 1 {
		t.Errorf("duplicate city selection produced %d Dawki entries, want 1", dawkiCount)
	}
}

func TestGenerateRecommendationsDefaultsTripDuration(t *testing.T) {
	svc := newTestService(0)
	plans, err := svc.GenerateRecommendations(context.Background(), models.TravelPreferences{
		StartDate: "not-a-date",
		GroupSize: 2,
	})
	if err != nil {
		t.Fatalf("GenerateRecommendations: %v", err)
	}
	for _, sp := range plans {
		if sp.DurationDays != 7 {
			t.Errorf("duration = %d, want default 7", sp.DurationDays)
		}
	}
}

func TestGenerateRecommendationsHonorsCancellation(t *testing.T) {
	svc := newTestService(200 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GenerateRecommendations(ctx, models.TravelPreferences{GroupSize: 1})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
