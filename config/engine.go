package config

// PriceBand is the inclusive range a displayed price is drawn from.
type PriceBand struct {
	Min int64
	Max int64
}

// GroupBand scores a plan for a group-size range. Difficulty overrides win over
// category overrides; Default applies otherwise. MaxGroupSize of 0 means unbounded.
type GroupBand struct {
	MaxGroupSize     int
	Default          int
	DifficultyScores map[string]int
	CategoryScores   map[string]int
}

// EngineRules holds every scoring and pricing table the planner engine consumes.
// They are plain data so tests can build their own rule sets without touching
// viper or any I/O.
type EngineRules struct {
	// InterestAffinity maps an interest tag to category weights. An interest
	// with no entry for a plan's category contributes BaselineInterest instead.
	InterestAffinity map[string]map[string]int
	// FlagshipBonus is added when an affinity hit lands on a flagship plan.
	FlagshipBonus    int
	BaselineInterest int

	// BudgetScores maps budget tier -> difficulty -> score.
	BudgetScores map[string]map[string]int

	// GroupBands are evaluated in order; the first band whose MaxGroupSize
	// covers the group applies.
	GroupBands []GroupBand

	// AdmissionThreshold is the total a plan must exceed to survive filtering.
	AdmissionThreshold int
	// MaxResults bounds the returned list.
	MaxResults int
	// MinAdmitted is the number of surviving plans below which the engine
	// abandons the filter and falls back to catalog order.
	MinAdmitted int

	// PriceBands maps budget tier -> display price range. Unknown tiers use
	// DefaultPriceTier's band.
	PriceBands       map[string]PriceBand
	DefaultPriceTier string

	// Booking calculator bounds.
	ExtraRoomFee int64
	MaxTravelers int
	MaxRooms     int
}

// DefaultEngineRules returns the shipped rule tables, overlaid with the
// deployment knobs from AppConfig.
func DefaultEngineRules() EngineRules {
	rules := EngineRules{
		InterestAffinity: map[string]map[string]int{
			"nature":      {"nature": 10},
			"waterfalls":  {"nature": 10},
			"photography": {"nature": 10, "heritage": 4},
			"trekking":    {"adventure": 10, "nature": 4},
			"caving":      {"adventure": 10},
			"adventure":   {"adventure": 10, "nature": 4},
			"heritage":    {"heritage": 10},
			"culture":     {"heritage": 10, "leisure": 3},
			"food":        {"leisure": 10, "heritage": 4},
			"relaxation":  {"leisure": 10},
		},
		FlagshipBonus:    5,
		BaselineInterest: 3,
		BudgetScores: map[string]map[string]int{
			"budget": {
				"Relaxed": 10, "Moderate": 10, "Challenging": 10, "Extreme": 3,
			},
			"standard": {
				"Relaxed": 10, "Moderate": 10, "Challenging": 10, "Extreme": 3,
			},
			"premium": {
				"Relaxed": 10, "Moderate": 10, "Challenging": 10, "Extreme": 10,
			},
			"luxury": {
				"Relaxed": 8, "Moderate": 8, "Challenging": 10, "Extreme": 10,
			},
		},
		GroupBands: []GroupBand{
			{MaxGroupSize: 2, Default: 10, DifficultyScores: map[string]int{"Extreme": 6}},
			{MaxGroupSize: 4, Default: 10},
			{MaxGroupSize: 8, Default: 8, CategoryScores: map[string]int{"heritage": 10}},
			{MaxGroupSize: 0, Default: 7, CategoryScores: map[string]int{"nature": 9}},
		},
		AdmissionThreshold: 15,
		MaxResults:         3,
		MinAdmitted:        2,
		PriceBands: map[string]PriceBand{
			"budget":   {Min: 15000, Max: 16500},
			"standard": {Min: 16000, Max: 18000},
			"premium":  {Min: 17500, Max: 19500},
			"luxury":   {Min: 18500, Max: 20000},
		},
		DefaultPriceTier: "standard",
		ExtraRoomFee:     2000,
		MaxTravelers:     10,
		MaxRooms:         5,
	}

	if AppConfig.AdmissionThreshold > 0 {
		rules.AdmissionThreshold = AppConfig.AdmissionThreshold
	}
	if AppConfig.MaxRecommendations > 0 {
		rules.MaxResults = AppConfig.MaxRecommendations
	}
	if AppConfig.ExtraRoomFee > 0 {
		rules.ExtraRoomFee = int64(AppConfig.ExtraRoomFee)
	}
	return rules
}
