package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/reviewlead-cli/internal/model"
)

func TestResponseRate_NoReviews(t *testing.T) {
	rr := ResponseRate(nil)
	assert.Equal(t, 0.0, rr.Rate)
	assert.Equal(t, "0.0%", rr.Percentage)
	assert.Equal(t, model.EngagementLow, rr.Engagement)
}

func TestResponseRate_FlagNeverSet(t *testing.T) {
	// Providers that never populate the owner-response flag always yield 0.
	reviews := []model.Review{{Rating: 5}, {Rating: 1}, {Rating: 3}}
	rr := ResponseRate(reviews)
	assert.Equal(t, 0.0, rr.Rate)
	assert.Equal(t, model.EngagementLow, rr.Engagement)
}

func TestResponseRate_Moderate(t *testing.T) {
	reviews := []model.Review{
		{OwnerResponse: true},
		{OwnerResponse: true},
		{},
		{},
	}
	rr := ResponseRate(reviews)
	assert.Equal(t, 0.5, rr.Rate)
	assert.Equal(t, "50.0%", rr.Percentage)
	assert.Equal(t, model.EngagementModerate, rr.Engagement)
}

func TestResponseRate_High(t *testing.T) {
	reviews := []model.Review{
		{OwnerResponse: true},
		{OwnerResponse: true},
		{OwnerResponse: true},
		{},
	}
	rr := ResponseRate(reviews)
	assert.Equal(t, 0.75, rr.Rate)
	assert.Equal(t, model.EngagementHigh, rr.Engagement)
}

func TestResponseRate_BoundaryNotHigh(t *testing.T) {
	// Exactly 0.7 is moderate, not high.
	reviews := make([]model.Review, 10)
	for i := 0; i < 7; i++ {
		reviews[i].OwnerResponse = true
	}
	rr := ResponseRate(reviews)
	assert.InDelta(t, 0.7, rr.Rate, 0.001)
	assert.Equal(t, model.EngagementModerate, rr.Engagement)
}
