package enrich

import (
	"github.com/sells-group/reviewlead-cli/internal/model"
)

// BusinessSize buckets a business by total review volume. SizeScore grows
// linearly at one point per ten reviews and saturates at 100.
func BusinessSize(totalReviews int) model.BusinessSize {
	var tier model.SizeTier
	var label string
	switch {
	case totalReviews < 10:
		tier, label = model.SizeVerySmall, "Micro (<10 reviews)"
	case totalReviews < 50:
		tier, label = model.SizeSmall, "Small (10-50 reviews)"
	case totalReviews < 200:
		tier, label = model.SizeMedium, "Medium (50-200 reviews)"
	case totalReviews < 500:
		tier, label = model.SizeLarge, "Large (200-500 reviews)"
	default:
		tier, label = model.SizeVeryLarge, "Very Large (500+ reviews)"
	}

	score := float64(totalReviews) / 10
	if score > 100 {
		score = 100
	}

	return model.BusinessSize{Tier: tier, Label: label, SizeScore: score}
}
