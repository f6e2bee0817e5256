package catalog

import (
	"context"
	"testing"
)

func TestSeedPlansIntegrity(t *testing.T) {
	plans := SeedPlans()
	if len(plans) < 3 {
		t.Fatalf("catalog has %d plans, the fallback path needs at least 3", len(plans))
	}

	seen := make(map[string]bool)
	for _, p := range plans {
		if seen[p.ID] {
			t.Errorf("duplicate plan id %s", p.ID)
		}
		seen[p.ID] = true

		sum := 0
		for _, pct := range p.PriceBreakdownPct {
			sum += pct
		}
		if sum != 100 {
			t.Errorf("plan %s price breakdown sums to %d, want 100", p.ID, sum)
		}

		if len(p.Destinations) == 0 {
			t.Errorf("plan %s has no destinations", p.ID)
		}
		if len(p.Itinerary) != p.BaseDurationDays {
			t.Errorf("plan %s has %d itinerary days for a %d-day trip", p.ID, len(p.Itinerary), p.BaseDurationDays)
		}
	}
}

func TestSeedRegistriesIntegrity(t *testing.T) {
	cityIDs := make(map[int]bool)
	for _, c := range SeedCities() {
		if cityIDs[c.ID] {
			t.Errorf("duplicate city id %d", c.ID)
		}
		cityIDs[c.ID] = true
		if c.Name == "" || c.Description == "" {
			t.Errorf("city %d missing name or description", c.ID)
		}
	}

	zeroSurcharge := 0
	for _, a := range SeedAccommodationTypes() {
		if a.Surcharge == 0 {
			zeroSurcharge++
		}
	}
	if zeroSurcharge != 1 {
		t.Errorf("%d zero-surcharge accommodation tiers, want exactly 1", zeroSurcharge)
	}
}

func TestMemoryRepoReturnsCopies(t *testing.T) {
	repo := NewMemoryCatalogRepo()
	ctx := context.Background()

	first, err := repo.Plans(ctx)
	if err != nil {
		t.Fatalf("Plans: %v", err)
	}
	first[0].Destinations[0].Name = "MUTATED"

	second, err := repo.Plans(ctx)
	if err != nil {
		t.Fatalf("Plans: %v", err)
	}
	if second[0].Destinations[0].Name == "MUTATED" {
		t.Error("catalog handed out shared destination slices")
	}
}

func TestPlanByID(t *testing.T) {
	repo := NewMemoryCatalogRepo()
	ctx := context.Background()

	plan, err := repo.PlanByID(ctx, "nature-ultimate")
	if err != nil {
		t.Fatalf("PlanByID: %v", err)
	}
	if plan.CategoryTag != "nature" || !plan.Flagship {
		t.Errorf("nature-ultimate should be the nature flagship, got %+v", plan)
	}

	if _, err := repo.PlanByID(ctx, "missing"); err != ErrPlanNotFound {
		t.Errorf("err = %v, want ErrPlanNotFound", err)
	}
}
