package enrich

import (
	"fmt"

	"github.com/sells-group/reviewlead-cli/internal/model"
)

// ResponseRate computes the fraction of reviews carrying an owner response.
// Providers that never populate the owner-response flag yield a rate of 0;
// that is a documented provider limitation, not an inference target.
func ResponseRate(reviews []model.Review) model.ResponseRate {
	rate := 0.0
	if len(reviews) > 0 {
		responded := 0
		for _, r := range reviews {
			if r.OwnerResponse {
				responded++
			}
		}
		rate = float64(responded) / float64(len(reviews))
	}

	engagement := model.EngagementLow
	switch {
	case rate > 0.7:
		engagement = model.EngagementHigh
	case rate > 0.3:
		engagement = model.EngagementModerate
	}

	return model.ResponseRate{
		Rate:       rate,
		Percentage: fmt.Sprintf("%.1f%%", rate*100),
		Engagement: engagement,
	}
}
