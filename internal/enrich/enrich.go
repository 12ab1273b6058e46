// Package enrich derives per-business signals from raw review records:
// rating trend, size tier, owner response rate, complaint keywords, and
// negative-review recency. Every extractor is a pure function over one
// record; nothing here touches the wire or the clock.
package enrich

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/reviewlead-cli/internal/model"
	"github.com/sells-group/reviewlead-cli/internal/sentiment"
)

// defaultWorkers bounds the enrichment fan-out when no limit is configured.
const defaultWorkers = 4

// Enricher applies all signal extractors to business records.
type Enricher struct {
	analyzer *sentiment.Analyzer
	lexicon  ComplaintLexicon
	workers  int
}

// New builds an Enricher. A nil complaint lexicon falls back to the
// embedded default; workers <= 0 falls back to the default bound.
func New(analyzer *sentiment.Analyzer, lexicon ComplaintLexicon, workers int) *Enricher {
	if lexicon == nil {
		lexicon = DefaultComplaintLexicon()
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Enricher{analyzer: analyzer, lexicon: lexicon, workers: workers}
}

// Enrich derives all signals for one record relative to the reference
// time. The input record is not modified; review sentiments are attached
// to a fresh copy of the review list.
func (e *Enricher) Enrich(rec model.BusinessRecord, now time.Time) model.EnrichedRecord {
	reviews := make([]model.Review, len(rec.Reviews))
	for i, r := range rec.Reviews {
		s := e.analyzer.Analyze(r.Text)
		r.Sentiment = &s
		reviews[i] = r
	}
	rec.Reviews = reviews

	return model.EnrichedRecord{
		Business: rec,
		Enrichment: model.EnrichmentBlock{
			ContactInfo:        ContactInfo(rec),
			ReviewTrend:        ReviewTrend(rec.Reviews),
			BusinessSize:       BusinessSize(rec.TotalReviews),
			ResponseRate:       ResponseRate(rec.Reviews),
			NegativeKeywords:   NegativeKeywords(rec.Reviews, e.analyzer, e.lexicon),
			LastNegativeReview: LastNegative(rec.Reviews, now),
		},
	}
}

// EnrichAll enriches every record relative to the same reference time.
// Records are processed on a bounded worker group but results are written
// by input index, so output order always matches input order. An empty
// input is an error: the pipeline has nothing to process and must not
// emit empty downstream artifacts.
func (e *Enricher) EnrichAll(ctx context.Context, records []model.BusinessRecord, now time.Time) ([]model.EnrichedRecord, error) {
	if len(records) == 0 {
		return nil, eris.New("enrich: no records to process")
	}

	enriched := make([]model.EnrichedRecord, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			enriched[i] = e.Enrich(rec, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "enrich: batch cancelled")
	}

	zap.L().Debug("enrichment complete", zap.Int("records", len(enriched)))
	return enriched, nil
}
