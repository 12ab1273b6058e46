package provider

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/reviewlead-cli/internal/model"
)

var generatorCategories = []string{
	"Restaurant", "Auto Repair", "Dental Clinic", "Hair Salon",
	"Plumbing", "Gym", "Pet Grooming", "Law Firm",
}

var generatorNames = []string{
	"Acme", "Riverside", "Summit", "Golden Gate", "Maple", "Harbor",
	"Pinnacle", "Blue Sky", "Cedar", "Lakeview", "Ironwood", "Sunset",
}

var positiveTexts = []string{
	"Great service, very friendly staff. Highly recommend.",
	"Excellent experience, everything was perfect.",
	"Love this place, always clean and professional.",
	"Fast and helpful, best in town.",
}

var negativeTexts = []string{
	"Terrible experience, rude staff and slow service.",
	"Overpriced and the place was dirty. Avoid.",
	"Horrible, waited an hour and they ignored us. Never again.",
	"Very disappointed, poor service and no refund offered.",
	"Unprofessional, my order was broken and cold.",
}

var neutralTexts = []string{
	"It was okay, nothing special.",
	"Average place, decent prices.",
	"",
}

// Generator produces a deterministic synthetic batch: same seed and
// reference time, same records. Useful for offline runs and demos.
type Generator struct {
	Count int
	Seed  int64
	Now   time.Time
}

// Fetch generates the batch. Roughly a third of the businesses skew
// negative so scored output exercises every priority tier.
func (g Generator) Fetch(ctx context.Context) ([]model.BusinessRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	count := g.Count
	if count <= 0 {
		count = 20
	}
	now := g.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	rng := rand.New(rand.NewSource(g.Seed))

	records := make([]model.BusinessRecord, count)
	for i := range records {
		records[i] = g.record(rng, i, now)
	}

	zap.L().Info("generated synthetic records",
		zap.Int("count", count),
		zap.Int64("seed", g.Seed),
	)
	return records, nil
}

func (g Generator) record(rng *rand.Rand, i int, now time.Time) model.BusinessRecord {
	name := fmt.Sprintf("%s %s",
		generatorNames[rng.Intn(len(generatorNames))],
		generatorCategories[rng.Intn(len(generatorCategories))],
	)
	// Name-keyed UUID keeps IDs stable across runs with the same seed.
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("reviewlead-%d-%s", g.Seed, name+fmt.Sprint(i)))).String()

	troubled := rng.Float64() < 0.35
	totalReviews := rng.Intn(600)
	reviewCount := rng.Intn(12)

	reviews := make([]model.Review, reviewCount)
	ratingSum := 0
	for j := range reviews {
		reviews[j] = g.review(rng, now, troubled)
		ratingSum += reviews[j].Rating
	}

	rating := 3.5 + rng.Float64()
	if troubled {
		rating = 1.5 + rng.Float64()*1.5
	}
	if reviewCount > 0 {
		rating = float64(ratingSum) / float64(reviewCount)
	}

	slug := fmt.Sprintf("%s%d", generatorNames[rng.Intn(len(generatorNames))], i)
	rec := model.BusinessRecord{
		ID:           id,
		Source:       model.SourceSynthetic,
		Name:         name,
		Rating:       round1(rating),
		TotalReviews: totalReviews,
		Category:     generatorCategories[rng.Intn(len(generatorCategories))],
		Address:      fmt.Sprintf("%d Main St, Springfield", 100+rng.Intn(900)),
		URL:          fmt.Sprintf("https://maps.example.com/place/%s", slug),
		ScrapedAt:    now,
		Reviews:      reviews,
	}

	if rng.Float64() < 0.7 {
		rec.Phone = fmt.Sprintf("+1-555-%04d", rng.Intn(10000))
	}
	if rng.Float64() < 0.6 {
		rec.Website = fmt.Sprintf("https://www.%s.example.com", slug)
	}
	if rng.Float64() < 0.25 {
		rec.Email = fmt.Sprintf("contact@%s.example.com", slug)
	}
	return rec
}

func (g Generator) review(rng *rand.Rand, now time.Time, troubled bool) model.Review {
	daysAgo := rng.Intn(365)
	if troubled && rng.Float64() < 0.5 {
		daysAgo = rng.Intn(30) // recent cluster of complaints
	}

	rating := 3 + rng.Intn(3)
	if troubled && rng.Float64() < 0.6 {
		rating = 1 + rng.Intn(2)
	}

	var text string
	switch {
	case rating <= 2:
		text = negativeTexts[rng.Intn(len(negativeTexts))]
	case rating >= 4:
		text = positiveTexts[rng.Intn(len(positiveTexts))]
	default:
		text = neutralTexts[rng.Intn(len(neutralTexts))]
	}

	return model.Review{
		Rating:        rating,
		Text:          text,
		Date:          now.AddDate(0, 0, -daysAgo),
		OwnerResponse: rng.Float64() < 0.15,
	}
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
