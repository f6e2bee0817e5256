package planner

import "tripatlas/models"

// maxInjectedCities bounds how many preferred cities are promoted into a plan.
const maxInjectedCities = 2

// InjectPreferredCities returns a copy of plan whose destination list starts
// with up to two of the given cities as primary destinations, each carrying
// the city description as its sole highlight and placeholder coordinates.
// Cities already present among the plan's destinations (exact name match) are
// skipped. The original destinations follow unmodified in their original
// order; the input plan is never mutated.
func InjectPreferredCities(plan models.PlanTemplate, cities []models.City) models.PlanTemplate {
	out := plan.Clone()
	if len(cities) == 0 {
		return out
	}

	var injected []models.Destination
	for _, city := range cities {
		if len(injected) == maxInjectedCities {
			break
		}
		if out.HasDestination(city.Name) {
			continue
		}
		injected = append(injected, models.Destination{
			Name:           city.Name,
			Classification: models.DestPrimary,
			Coordinates:    models.PlaceholderCoordinates,
			Highlights:     []string{city.Description},
		})
	}
	if len(injected) == 0 {
		return out
	}

	out.Destinations = append(injected, out.Destinations...)
	return out
}

// resolveCities maps unique preferred city ids to registry entries, dropping
// ids the registry does not know. Order follows the user's selection order.
func (s *DefaultRecommendationService) resolveCities(prefs models.TravelPreferences, registry []models.City) []models.City {
	byID := make(map[int]models.City, len(registry))
	for _, c := range registry {
		byID[c.ID] = c
	}
	var resolved []models.City
	for _, id := range prefs.UniquePreferredCityIDs() {
		if city, ok := byID[id]; ok {
			resolved = append(resolved, city)
		}
	}
	return resolved
}
