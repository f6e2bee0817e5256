package models

// ScoreBreakdown carries the individual components a plan was scored on.
type ScoreBreakdown struct {
	Interest int `json:"interest"`
	Budget   int `json:"budget"`
	Group    int `json:"group"`
	Total    int `json:"total"`
}

// ScoredPlan is a request-scoped recommendation: a plan copy (with injected
// cities), its match score and a generated display price. It is built fresh
// per request and never persisted.
type ScoredPlan struct {
	Plan         PlanTemplate   `json:"plan"`
	Score        ScoreBreakdown `json:"score"`
	DisplayPrice int64          `json:"displayPrice"`
	DurationDays int            `json:"durationDays"`
	Fallback     bool           `json:"fallback,omitempty"`
}

// RecommendationResponse wraps the generated plan list.
type RecommendationResponse struct {
	Plans       []ScoredPlan `json:"plans"`
	GeneratedAt string       `json:"generatedAt"`
}
