package models

// Plan difficulty grades.
const (
	DifficultyRelaxed     = "Relaxed"
	DifficultyModerate    = "Moderate"
	DifficultyChallenging = "Challenging"
	DifficultyExtreme     = "Extreme"
)

// Destination classifications.
const (
	DestPrimary   = "primary"
	DestSecondary = "secondary"
	DestHiddenGem = "hidden-gem"
)

// PlaceholderCoordinates marks an injected destination whose exact coordinates
// are resolved later by the presentation layer.
const PlaceholderCoordinates = "0.0,0.0"

// Destination is one stop on a plan's route.
type Destination struct {
	Name           string   `bson:"name" json:"name"`
	Classification string   `bson:"classification" json:"classification"`
	Coordinates    string   `bson:"coordinates" json:"coordinates"`
	Highlights     []string `bson:"highlights" json:"highlights"`
}

// DayPlan is one entry of a plan's itinerary skeleton.
type DayPlan struct {
	Day        int      `bson:"day" json:"day"`
	Title      string   `bson:"title" json:"title"`
	Activities []string `bson:"activities" json:"activities"`
}

// PlanTemplate is a catalog-defined trip blueprint. Templates are loaded once
// at startup and are read-only afterwards; per-request derivations (city
// injection) always operate on a copy.
type PlanTemplate struct {
	ID                string         `bson:"_id" json:"id"`
	CategoryTag       string         `bson:"categoryTag" json:"categoryTag"`
	Flagship          bool           `bson:"flagship" json:"flagship"`
	Title             string         `bson:"title" json:"title"`
	BaseDurationDays  int            `bson:"baseDurationDays" json:"baseDurationDays"`
	Difficulty        string         `bson:"difficulty" json:"difficulty"`
	Destinations      []Destination  `bson:"destinations" json:"destinations"`
	Highlights        []string       `bson:"highlights" json:"highlights"`
	PriceBreakdownPct map[string]int `bson:"priceBreakdownPct" json:"priceBreakdownPct"`
	Itinerary         []DayPlan      `bson:"itinerary" json:"itinerary"`
	Seasonality       string         `bson:"seasonality" json:"seasonality"`
	Inclusions        []string       `bson:"inclusions" json:"inclusions"`
	Exclusions        []string       `bson:"exclusions" json:"exclusions"`
	BestForTags       []string       `bson:"bestForTags" json:"bestForTags"`
}

// Clone returns a deep copy safe to mutate per request.
func (p PlanTemplate) Clone() PlanTemplate {
	out := p
	out.Destinations = append([]Destination(nil), p.Destinations...)
	for i, d := range out.Destinations {
		out.Destinations[i].Highlights = append([]string(nil), d.Highlights...)
	}
	out.Highlights = append([]string(nil), p.Highlights...)
	out.Itinerary = append([]DayPlan(nil), p.Itinerary...)
	for i, d := range out.Itinerary {
		out.Itinerary[i].Activities = append([]string(nil), d.Activities...)
	}
	out.Inclusions = append([]string(nil), p.Inclusions...)
	out.Exclusions = append([]string(nil), p.Exclusions...)
	out.BestForTags = append([]string(nil), p.BestForTags...)
	if p.PriceBreakdownPct != nil {
		out.PriceBreakdownPct = make(map[string]int, len(p.PriceBreakdownPct))
		for k, v := range p.PriceBreakdownPct {
			out.PriceBreakdownPct[k] = v
		}
	}
	return out
}

// HasDestination reports whether a destination with the exact name exists.
func (p PlanTemplate) HasDestination(name string) bool {
	for _, d := range p.Destinations {
		if d.Name == name {
			return true
		}
	}
	return false
}
