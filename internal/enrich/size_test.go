package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/reviewlead-cli/internal/model"
)

func TestBusinessSize_Tiers(t *testing.T) {
	cases := []struct {
		total int
		tier  model.SizeTier
		label string
	}{
		{0, model.SizeVerySmall, "Micro (<10 reviews)"},
		{9, model.SizeVerySmall, "Micro (<10 reviews)"},
		{10, model.SizeSmall, "Small (10-50 reviews)"},
		{49, model.SizeSmall, "Small (10-50 reviews)"},
		{50, model.SizeMedium, "Medium (50-200 reviews)"},
		{199, model.SizeMedium, "Medium (50-200 reviews)"},
		{200, model.SizeLarge, "Large (200-500 reviews)"},
		{499, model.SizeLarge, "Large (200-500 reviews)"},
		{500, model.SizeVeryLarge, "Very Large (500+ reviews)"},
		{10000, model.SizeVeryLarge, "Very Large (500+ reviews)"},
	}
	for _, c := range cases {
		size := BusinessSize(c.total)
		assert.Equal(t, c.tier, size.Tier, "total=%d", c.total)
		assert.Equal(t, c.label, size.Label, "total=%d", c.total)
	}
}

func TestBusinessSize_ScoreScaling(t *testing.T) {
	assert.Equal(t, 0.0, BusinessSize(0).SizeScore)
	assert.Equal(t, 2.5, BusinessSize(25).SizeScore)
	assert.Equal(t, 100.0, BusinessSize(1000).SizeScore)
	assert.Equal(t, 100.0, BusinessSize(50000).SizeScore)
}

func TestBusinessSize_ScoreMonotonicAndBounded(t *testing.T) {
	prev := -1.0
	for total := 0; total <= 2000; total += 7 {
		s := BusinessSize(total).SizeScore
		assert.GreaterOrEqual(t, s, prev, "total=%d", total)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 100.0)
		prev = s
	}
}
