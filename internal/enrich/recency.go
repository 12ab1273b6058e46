package enrich

import (
	"time"

	"github.com/sells-group/reviewlead-cli/internal/model"
)

// LastNegative finds the most recent review rated 2 or below and grades
// how long ago it was relative to now. Returns nil when no such review
// exists.
func LastNegative(reviews []model.Review, now time.Time) *model.LastNegative {
	var latest *time.Time
	for _, r := range reviews {
		if r.Rating > 2 {
			continue
		}
		d := r.Date
		if latest == nil || d.After(*latest) {
			latest = &d
		}
	}
	if latest == nil {
		return nil
	}

	days := int(now.Sub(*latest).Hours() / 24)

	recency := model.RecencyOld
	switch {
	case days < 7:
		recency = model.RecencyVeryRecent
	case days < 30:
		recency = model.RecencyRecent
	}

	return &model.LastNegative{
		Date:      *latest,
		DaysSince: days,
		Recency:   recency,
	}
}
