package planner

import (
	"math/rand"
	"sync"
	"time"

	"tripatlas/config"
)

// PriceGenerator draws display prices from the budget tier's inclusive band.
// Every generation re-rolls, so redisplaying the same preferences produces
// different prices; callers that need reproducible output seed the source
// themselves.
type PriceGenerator struct {
	rules config.EngineRules

	mu  sync.Mutex
	rng *rand.Rand
}

// NewPriceGenerator returns a generator with a time-seeded source.
func NewPriceGenerator(rules config.EngineRules) *PriceGenerator {
	return NewSeededPriceGenerator(rules, time.Now().UnixNano())
}

// NewSeededPriceGenerator returns a generator over a fixed seed.
func NewSeededPriceGenerator(rules config.EngineRules, seed int64) *PriceGenerator {
	return &PriceGenerator{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// DisplayPrice returns a uniform random integer within the tier's band.
// Unknown tiers fall back to the default tier's band.
func (g *PriceGenerator) DisplayPrice(tier string) int64 {
	band, ok := g.rules.PriceBands[tier]
	if !ok {
		band = g.rules.PriceBands[g.rules.DefaultPriceTier]
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return band.Min + g.rng.Int63n(band.Max-band.Min+1)
}
