package models

import "time"

// Budget tiers accepted from the planner form. Anything else falls back to the
// standard band rather than being rejected.
const (
	TierBudget   = "budget"
	TierStandard = "standard"
	TierPremium  = "premium"
	TierLuxury   = "luxury"
)

const (
	defaultTripDays = 7
	minTripDays     = 3
	dateLayout      = "2006-01-02"
)

// TravelPreferences is the immutable snapshot of the planner form, captured at
// the moment the user triggers generation. The engine never reads live form
// state.
type TravelPreferences struct {
	StartDate         string   `json:"startDate"`
	EndDate           string   `json:"endDate"`
	GroupSize         int      `json:"groupSize"`
	Interests         []string `json:"interests"`
	BudgetTier        string   `json:"budgetTier"`
	AccommodationType string   `json:"accommodationType"`
	TravelStyle       string   `json:"travelStyle"`
	PreferredCityIDs  []int    `json:"preferredCityIds"`
	SpecialRequests   string   `json:"specialRequests"`
}

// TripDurationDays derives the trip length from the selected dates. Missing or
// unparseable dates fall back to a 7-day trip; a valid but very short range is
// floored at 3 days. There is no error path here on purpose.
func (p TravelPreferences) TripDurationDays() int {
	start, errStart := time.Parse(dateLayout, p.StartDate)
	end, errEnd := time.Parse(dateLayout, p.EndDate)
	if errStart != nil || errEnd != nil || end.Before(start) {
		return defaultTripDays
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < minTripDays {
		return minTripDays
	}
	return days
}

// NormalizedGroupSize clamps the group size to at least one traveler.
func (p TravelPreferences) NormalizedGroupSize() int {
	if p.GroupSize < 1 {
		return 1
	}
	return p.GroupSize
}

// UniquePreferredCityIDs collapses duplicate city selections while preserving
// the order the user picked them in.
func (p TravelPreferences) UniquePreferredCityIDs() []int {
	seen := make(map[int]bool, len(p.PreferredCityIDs))
	var ids []int
	for _, id := range p.PreferredCityIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
