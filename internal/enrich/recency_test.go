package enrich

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/reviewlead-cli/internal/model"
)

func TestLastNegative_NoneExists(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	reviews := []model.Review{
		{Rating: 3, Date: now.AddDate(0, 0, -2)},
		{Rating: 5, Date: now.AddDate(0, 0, -1)},
	}
	assert.Nil(t, LastNegative(reviews, now))
	assert.Nil(t, LastNegative(nil, now))
}

func TestLastNegative_PicksLatest(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	reviews := []model.Review{
		{Rating: 1, Date: now.AddDate(0, 0, -100)},
		{Rating: 2, Date: now.AddDate(0, 0, -3)},
		{Rating: 1, Date: now.AddDate(0, 0, -40)},
		{Rating: 5, Date: now.AddDate(0, 0, -1)},
	}
	neg := LastNegative(reviews, now)
	require.NotNil(t, neg)
	assert.Equal(t, now.AddDate(0, 0, -3), neg.Date)
	assert.Equal(t, 3, neg.DaysSince)
	assert.Equal(t, model.RecencyVeryRecent, neg.Recency)
}

func TestLastNegative_RecencyTiers(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		daysAgo int
		tier    model.RecencyTier
	}{
		{0, model.RecencyVeryRecent},
		{6, model.RecencyVeryRecent},
		{7, model.RecencyRecent},
		{29, model.RecencyRecent},
		{30, model.RecencyOld},
		{365, model.RecencyOld},
	}
	for _, c := range cases {
		reviews := []model.Review{{Rating: 1, Date: now.AddDate(0, 0, -c.daysAgo)}}
		neg := LastNegative(reviews, now)
		require.NotNil(t, neg, "daysAgo=%d", c.daysAgo)
		assert.Equal(t, c.daysAgo, neg.DaysSince, "daysAgo=%d", c.daysAgo)
		assert.Equal(t, c.tier, neg.Recency, "daysAgo=%d", c.daysAgo)
	}
}

func TestLastNegative_RatingThreeNotNegative(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	reviews := []model.Review{{Rating: 3, Date: now.AddDate(0, 0, -1)}}
	assert.Nil(t, LastNegative(reviews, now))
}
