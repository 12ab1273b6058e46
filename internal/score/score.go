// Package score turns enriched records into prioritized leads via a
// fixed weighted rubric. Higher scores mean more reputational trouble,
// which for this pipeline means a better outreach target.
package score

import (
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/reviewlead-cli/internal/model"
)

// Factor names used as keys in ScoredLead.Details.
const (
	FactorRecentNegatives = "recent_negatives"
	FactorLowResponseRate = "low_response_rate"
	FactorBusinessSize    = "business_size"
	FactorRatingDecline   = "rating_decline"
)

// recentWindow is how far back a negative review still counts as recent.
const recentWindow = 30 * 24 * time.Hour

// Weights holds the maximum points each rubric factor can award.
// The defaults sum to 100; partial awards are round-half-up fractions
// of the factor weight.
type Weights struct {
	RecentNegatives int `yaml:"recent_negatives" mapstructure:"recent_negatives"`
	LowResponseRate int `yaml:"low_response_rate" mapstructure:"low_response_rate"`
	BusinessSize    int `yaml:"business_size" mapstructure:"business_size"`
	RatingDecline   int `yaml:"rating_decline" mapstructure:"rating_decline"`
}

// DefaultWeights returns the standard rubric weighting.
func DefaultWeights() Weights {
	return Weights{
		RecentNegatives: 40,
		LowResponseRate: 30,
		BusinessSize:    20,
		RatingDecline:   10,
	}
}

// Lead scores a single enriched record relative to the reference time.
// Each factor is evaluated independently; points are summed and capped
// at 100. Only factors that awarded points appear in Details.
func Lead(enriched model.EnrichedRecord, weights Weights, now time.Time) model.ScoredLead {
	details := make(map[string]model.FactorDetail)
	total := 0

	if pts, count := scoreRecentNegatives(enriched.Business.Reviews, weights.RecentNegatives, now); pts > 0 {
		details[FactorRecentNegatives] = model.FactorDetail{
			Inputs: map[string]any{"recent_negative_count": count},
			Points: pts,
		}
		total += pts
	}

	rate := enriched.Enrichment.ResponseRate.Rate
	if pts := scoreLowResponseRate(rate, weights.LowResponseRate); pts > 0 {
		details[FactorLowResponseRate] = model.FactorDetail{
			Inputs: map[string]any{"response_rate": rate},
			Points: pts,
		}
		total += pts
	}

	if pts := scoreBusinessSize(enriched.Business.TotalReviews, weights.BusinessSize); pts > 0 {
		details[FactorBusinessSize] = model.FactorDetail{
			Inputs: map[string]any{"total_reviews": enriched.Business.TotalReviews},
			Points: pts,
		}
		total += pts
	}

	trend := enriched.Enrichment.ReviewTrend
	if pts := scoreRatingDecline(trend, weights.RatingDecline); pts > 0 {
		details[FactorRatingDecline] = model.FactorDetail{
			Inputs: map[string]any{
				"trend":    string(trend.Trend),
				"change":   trend.Change,
				"severity": string(trend.Severity),
			},
			Points: pts,
		}
		total += pts
	}

	if total > 100 {
		total = 100
	}

	return model.ScoredLead{
		Enriched: enriched,
		Score:    total,
		Details:  details,
		Priority: priorityFor(total),
	}
}

// All scores every enriched record and returns the set sorted by score
// descending. The sort is stable: equal scores keep their input order.
// The input slice is not modified.
func All(enriched []model.EnrichedRecord, weights Weights, now time.Time) []model.ScoredLead {
	leads := make([]model.ScoredLead, len(enriched))
	for i, e := range enriched {
		leads[i] = Lead(e, weights, now)
	}

	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].Score > leads[j].Score
	})

	zap.L().Debug("scoring complete", zap.Int("leads", len(leads)))
	return leads
}

// scoreRecentNegatives counts reviews rated <=2 within the recent window
// and awards a stepped fraction of the factor weight.
func scoreRecentNegatives(reviews []model.Review, weight int, now time.Time) (int, int) {
	cutoff := now.Add(-recentWindow)
	count := 0
	for _, r := range reviews {
		if r.Rating <= 2 && r.Date.After(cutoff) {
			count++
		}
	}

	switch {
	case count >= 5:
		return weight, count
	case count >= 3:
		return roundHalfUp(0.6 * float64(weight)), count
	case count >= 1:
		return roundHalfUp(0.3 * float64(weight)), count
	}
	return 0, count
}

func scoreLowResponseRate(rate float64, weight int) int {
	switch {
	case rate < 0.2:
		return weight
	case rate < 0.5:
		return roundHalfUp(0.5 * float64(weight))
	}
	return 0
}

// scoreBusinessSize uses its own thresholds, independent of the
// enrichment size tiers.
func scoreBusinessSize(totalReviews, weight int) int {
	switch {
	case totalReviews > 100:
		return weight
	case totalReviews > 50:
		return roundHalfUp(0.7 * float64(weight))
	case totalReviews > 20:
		return roundHalfUp(0.4 * float64(weight))
	}
	return 0
}

func scoreRatingDecline(trend model.ReviewTrend, weight int) int {
	switch {
	case trend.Trend == model.TrendWorsening || trend.Severity == model.SeverityCritical:
		return weight
	case trend.Severity == model.SeverityHigh:
		return roundHalfUp(0.5 * float64(weight))
	}
	return 0
}

func priorityFor(score int) model.Priority {
	switch {
	case score >= 80:
		return model.PriorityCritical
	case score >= 60:
		return model.PriorityHigh
	case score >= 40:
		return model.PriorityMedium
	}
	return model.PriorityLow
}

func roundHalfUp(v float64) int {
	return int(math.Round(v))
}
