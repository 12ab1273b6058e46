package enrich

import (
	"math"
	"sort"

	"github.com/sells-group/reviewlead-cli/internal/model"
)

// minTrendReviews is the smallest review count a trend can be computed from.
const minTrendReviews = 5

// ReviewTrend compares the mean rating of the newer half of reviews against
// the older half. Fewer than five reviews yields insufficient_data with a
// zero change.
func ReviewTrend(reviews []model.Review) model.ReviewTrend {
	if len(reviews) < minTrendReviews {
		return model.ReviewTrend{
			Trend:    model.TrendInsufficientData,
			Change:   0,
			Severity: model.SeverityModerate,
		}
	}

	sorted := make([]model.Review, len(reviews))
	copy(sorted, reviews)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	mid := len(sorted) / 2
	recentAvg := meanRating(sorted[:mid])
	olderAvg := meanRating(sorted[mid:])
	change := round2(recentAvg - olderAvg)

	trend := model.TrendStable
	switch {
	case change < -0.3:
		trend = model.TrendWorsening
	case change > 0.3:
		trend = model.TrendImproving
	}

	severity := model.SeverityModerate
	switch {
	case change < -0.5:
		severity = model.SeverityCritical
	case change < -0.3:
		severity = model.SeverityHigh
	}

	return model.ReviewTrend{
		Trend:     trend,
		Change:    change,
		RecentAvg: round2(recentAvg),
		OlderAvg:  round2(olderAvg),
		Severity:  severity,
	}
}

func meanRating(reviews []model.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
