// Package coaching evaluates the fixed rule set against an analysis bundle
// and synthesizes the final recommendation list: deduplicated by title,
// priority-sorted, capped.
package coaching

import (
	"sort"

	"go.uber.org/zap"

	"github.com/salescoachapi/goSalesCoach/business/analysis"
)

// maxRecommendations caps the final list.
const maxRecommendations = 8

type Engine struct {
	logger *zap.SugaredLogger
	rules  []Rule
}

func NewEngine(logger *zap.SugaredLogger, thresholds Thresholds) *Engine {
	return &Engine{
		logger: logger,
		rules:  ruleSet(thresholds),
	}
}

// Recommend evaluates every rule in the fixed order and returns the
// prioritized list. The engine never fails: a panic during evaluation, or a
// bundle that fires no rule at all, yields the single fallback
// recommendation.
func (e *Engine) Recommend(bundle analysis.Bundle) (list []Recommendation) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Errorw("coaching: recommend", "id", bundle.ID, "ERROR", r)
			list = []Recommendation{Fallback()}
		}
	}()

	var candidates []Recommendation
	for _, rule := range e.rules {
		if rule.When(&bundle) {
			candidates = append(candidates, rule.build(&bundle))
		}
	}

	list = prioritize(candidates)
	if len(list) == 0 {
		list = []Recommendation{Fallback()}
	}

	return list
}

// prioritize deduplicates by title keeping the first occurrence, stable-sorts
// by priority rank descending so equal priorities keep their rule-evaluation
// order, and truncates to the cap.
func prioritize(candidates []Recommendation) []Recommendation {
	seen := make(map[string]bool, len(candidates))
	unique := make([]Recommendation, 0, len(candidates))

	for _, candidate := range candidates {
		if !seen[candidate.Title] {
			seen[candidate.Title] = true
			unique = append(unique, candidate)
		}
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Priority.Rank() > unique[j].Priority.Rank()
	})

	if len(unique) > maxRecommendations {
		unique = unique[:maxRecommendations]
	}

	return unique
}

// Fallback is the recommendation substituted when synthesis produced nothing
// usable.
func Fallback() Recommendation {
	return Recommendation{
		Category:    CategoryGeneral,
		Priority:    PriorityMedium,
		Title:       "Practice and Prepare",
		Description: "Regular practice is the foundation of great presentations. Rehearse your content and anticipate questions.",
		ActionableSteps: []string{
			"Practice your presentation multiple times",
			"Prepare for common questions",
			"Time your presentation sections",
			"Get feedback from colleagues",
		},
		Examples: []string{
			"Rehearse in front of a mirror",
			"Record yourself and review",
			"Practice with different audience scenarios",
		},
	}
}
