package planner

import (
	"sort"

	"tripatlas/config"
	"tripatlas/models"
)

// ScorePlan computes the weighted match score of a single plan against the
// given preferences using the injected rule tables.
func ScorePlan(rules config.EngineRules, plan models.PlanTemplate, prefs models.TravelPreferences) models.ScoreBreakdown {
	breakdown := models.ScoreBreakdown{
		Interest: interestScore(rules, plan, prefs.Interests),
		Budget:   budgetScore(rules, plan, prefs.BudgetTier),
		Group:    groupScore(rules, plan, prefs.NormalizedGroupSize()),
	}
	breakdown.Total = breakdown.Interest + breakdown.Budget + breakdown.Group
	return breakdown
}

// interestScore sums the affinity of every selected interest for the plan's
// category. An interest with no affinity entry for the category still
// contributes the flat baseline, so broad preference sets accumulate some
// score. Affinity hits on a flagship plan earn the flagship bonus.
func interestScore(rules config.EngineRules, plan models.PlanTemplate, interests []string) int {
	total := 0
	for _, interest := range interests {
		weights, known := rules.InterestAffinity[interest]
		if !known {
			total += rules.BaselineInterest
			continue
		}
		pts, hit := weights[plan.CategoryTag]
		if !hit {
			total += rules.BaselineInterest
			continue
		}
		total += pts
		if plan.Flagship {
			total += rules.FlagshipBonus
		}
	}
	return total
}

// budgetScore looks up the tier x difficulty table. Unrecognized tiers use
// the default tier's row rather than failing.
func budgetScore(rules config.EngineRules, plan models.PlanTemplate, tier string) int {
	row, ok := rules.BudgetScores[tier]
	if !ok {
		row = rules.BudgetScores[rules.DefaultPriceTier]
	}
	return row[plan.Difficulty]
}

// groupScore applies the first group-size band covering the group. Difficulty
// overrides take precedence over category overrides.
func groupScore(rules config.EngineRules, plan models.PlanTemplate, groupSize int) int {
	for _, band := range rules.GroupBands {
		if band.MaxGroupSize != 0 && groupSize > band.MaxGroupSize {
			continue
		}
		if pts, ok := band.DifficultyScores[plan.Difficulty]; ok {
			return pts
		}
		if pts, ok := band.CategoryScores[plan.CategoryTag]; ok {
			return pts
		}
		return band.Default
	}
	return 0
}

// rankedPlan pairs a catalog plan with its score and original position.
type rankedPlan struct {
	plan     models.PlanTemplate
	score    models.ScoreBreakdown
	position int
	fallback bool
}

// selectPlans scores the whole catalog and applies the admission policy:
// plans whose total exceeds the threshold survive, ranked by descending score
// with catalog order as tiebreak. When fewer than MinAdmitted survive -- or
// the preference set carries no interests at all, which can never produce a
// meaningful match signal -- the filter is abandoned and the first MaxResults
// catalog entries are returned in catalog order so the user always sees
// results.
func selectPlans(rules config.EngineRules, plans []models.PlanTemplate, prefs models.TravelPreferences) []rankedPlan {
	scored := make([]rankedPlan, 0, len(plans))
	for i, plan := range plans {
		scored = append(scored, rankedPlan{
			plan:     plan,
			score:    ScorePlan(rules, plan, prefs),
			position: i,
		})
	}

	var admitted []rankedPlan
	if len(prefs.Interests) > 0 {
		for _, rp := range scored {
			if rp.score.Total > rules.AdmissionThreshold {
				admitted = append(admitted, rp)
			}
		}
	}

	if len(admitted) < rules.MinAdmitted {
		// Fallback: first catalog entries, catalog order, filter ignored.
		n := rules.MaxResults
		if n > len(scored) {
			n = len(scored)
		}
		out := make([]rankedPlan, n)
		copy(out, scored[:n])
		for i := range out {
			out[i].fallback = true
		}
		return out
	}

	sort.SliceStable(admitted, func(i, j int) bool {
		if admitted[i].score.Total != admitted[j].score.Total {
			return admitted[i].score.Total > admitted[j].score.Total
		}
		return admitted[i].position < admitted[j].position
	})

	if len(admitted) > rules.MaxResults {
		admitted = admitted[:rules.MaxResults]
	}
	return admitted
}
