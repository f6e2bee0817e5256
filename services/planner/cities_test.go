package planner

import (
	"testing"

	catalogRepo "tripatlas/database/repository/catalog"
	"tripatlas/models"
)

func cityByName(t *testing.T, name string) models.City {
	t.Helper()
	for _, c := range catalogRepo.SeedCities() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("city %s not in seed registry", name)
	return models.City{}
}

func TestInjectPreferredCitiesPrependsAsPrimary(t *testing.T) {
	plan := planByID(t, "adventure-extreme") // no Shillong or Dawki among destinations
	originalLen := len(plan.Destinations)

	out := InjectPreferredCities(plan, []models.City{
		cityByName(t, "Shillong"),
		cityByName(t, "Dawki"),
	})

	if len(out.Destinations) != originalLen+2 {
		t.Fatalf("got %d destinations, want %d", len(out.Destinations), originalLen+2)
	}
	for i, want := range []string{"Shillong", "Dawki"} {
		d := out.Destinations[i]
		if d.Name != want {
			t.Errorf("injected[%d] = %s, want %s", i, d.Name, want)
		}
		if d.Classification != models.DestPrimary {
			t.Errorf("injected[%d] classification = %s, want primary", i, d.Classification)
		}
		if d.Coordinates != models.PlaceholderCoordinates {
			t.Errorf("injected[%d] coordinates = %s, want placeholder", i, d.Coordinates)
		}
		if len(d.Highlights) != 1 {
			t.Errorf("injected[%d] should carry the city description as sole highlight", i)
		}
	}
	// Originals follow, unmodified and in order.
	for i, d := range plan.Destinations {
		if out.Destinations[i+2].Name != d.Name {
			t.Errorf("original destination %d reordered: got %s, want %s", i, out.Destinations[i+2].Name, d.Name)
		}
	}
}

func TestInjectPreferredCitiesSkipsExistingNames(t *testing.T) {
	plan := planByID(t, "nature-ultimate") // already visits Shillong
	out := InjectPreferredCities(plan, []models.City{
		cityByName(t, "Shillong"),
		cityByName(t, "Jowai"),
	})

	if len(out.Destinations) != len(plan.Destinations)+1 {
		t.Fatalf("got %d destinations, want %d", len(out.Destinations), len(plan.Destinations)+1)
	}
	if out.Destinations[0].Name != "Jowai" {
		t.Errorf("first destination = %s, want Jowai", out.Destinations[0].Name)
	}
	count := 0
	for _, d := range out.Destinations {
		if d.Name == "Shillong" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Shillong appears %d times, want 1", count)
	}
}

func TestInjectPreferredCitiesCapsAtTwo(t *testing.T) {
	plan := planByID(t, "adventure-extreme")
	out := InjectPreferredCities(plan, []models.City{
		cityByName(t, "Shillong"),
		cityByName(t, "Dawki"),
		cityByName(t, "Jowai"),
	})
	if len(out.Destinations) != len(plan.Destinations)+2 {
		t.Fatalf("got %d destinations, want %d", len(out.Destinations), len(plan.Destinations)+2)
	}
}

func TestInjectPreferredCitiesDoesNotMutateTemplate(t *testing.T) {
	plan := planByID(t, "adventure-extreme")
	before := len(plan.Destinations)
	firstName := plan.Destinations[0].Name

	_ = InjectPreferredCities(plan, []models.City{cityByName(t, "Shillong")})

	if len(plan.Destinations) != before || plan.Destinations[0].Name != firstName {
		t.Error("InjectPreferredCities mutated the input template")
	}
}

func TestUniquePreferredCityIDsCollapsesDuplicates(t *testing.T) {
	prefs := models.TravelPreferences{PreferredCityIDs: []int{3, 1, 3, 1, 5}}
	got := prefs.UniquePreferredCityIDs()
	want := []int{3, 1, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
