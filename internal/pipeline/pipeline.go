// Package pipeline wires acquisition, enrichment, scoring, and export
// into one batch run. Data flows strictly forward; each stage layers a
// new value over the previous one and nothing is mutated after handoff.
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/reviewlead-cli/internal/digest"
	"github.com/sells-group/reviewlead-cli/internal/enrich"
	"github.com/sells-group/reviewlead-cli/internal/export"
	"github.com/sells-group/reviewlead-cli/internal/model"
	"github.com/sells-group/reviewlead-cli/internal/provider"
	"github.com/sells-group/reviewlead-cli/internal/score"
)

// Artifact file names within the output directory.
const (
	FileRaw      = "raw.json"
	FileEnriched = "enriched.json"
	FileLeads    = "leads.json"
	FileLeadsCSV = "leads.csv"
	FileLeadsXLS = "leads.xlsx"
	FileDigest   = "digest.txt"
)

// Pipeline runs the full batch transform and writes all artifacts.
type Pipeline struct {
	enricher *enrich.Enricher
	weights  score.Weights
	notifier *digest.Notifier
	outDir   string
	topCount int
}

// Result summarizes a completed run.
type Result struct {
	Records  int                  `json:"records"`
	Leads    []model.ScoredLead   `json:"-"`
	Digest   string               `json:"digest"`
	Delivery model.DeliveryResult `json:"delivery"`
	OutDir   string               `json:"out_dir"`
}

// New builds a Pipeline.
func New(enricher *enrich.Enricher, weights score.Weights, notifier *digest.Notifier, outDir string, topCount int) *Pipeline {
	return &Pipeline{
		enricher: enricher,
		weights:  weights,
		notifier: notifier,
		outDir:   outDir,
		topCount: topCount,
	}
}

// Run executes acquire → enrich → score → export → digest against a
// single reference time. Export failures abort before the digest is
// reported, so a run either produces the full artifact set or halts
// with a specific cause. Digest delivery failure alone never aborts:
// the digest is persisted locally regardless of delivery outcome.
func (p *Pipeline) Run(ctx context.Context, source provider.Source, now time.Time) (*Result, error) {
	log := zap.L().With(zap.String("out_dir", p.outDir))

	records, err := source.Fetch(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: acquire records")
	}
	if len(records) == 0 {
		return nil, eris.New("pipeline: provider returned no records")
	}
	log.Info("records acquired", zap.Int("count", len(records)))

	if err := os.MkdirAll(p.outDir, 0o755); err != nil {
		return nil, eris.Wrap(err, "pipeline: create output dir")
	}
	if err := export.WriteJSON(filepath.Join(p.outDir, FileRaw), records); err != nil {
		return nil, err
	}

	enriched, err := p.enricher.EnrichAll(ctx, records, now)
	if err != nil {
		return nil, err
	}
	if err := export.WriteJSON(filepath.Join(p.outDir, FileEnriched), enriched); err != nil {
		return nil, err
	}

	leads := score.All(enriched, p.weights, now)
	if err := p.writeLeads(leads); err != nil {
		return nil, err
	}

	text := digest.Build(leads, p.topCount)
	if err := os.WriteFile(filepath.Join(p.outDir, FileDigest), []byte(text), 0o644); err != nil {
		return nil, eris.Wrap(err, "pipeline: write digest")
	}

	delivery := p.notifier.Deliver(ctx, text)
	if !delivery.Sent {
		log.Info("digest not delivered", zap.String("reason", delivery.Reason))
	}

	log.Info("run complete",
		zap.Int("records", len(records)),
		zap.Int("leads", len(leads)),
		zap.Bool("digest_sent", delivery.Sent),
	)

	return &Result{
		Records:  len(records),
		Leads:    leads,
		Digest:   text,
		Delivery: delivery,
		OutDir:   p.outDir,
	}, nil
}

// Rescore re-runs scoring and export off stored enriched records,
// skipping acquisition and enrichment.
func (p *Pipeline) Rescore(ctx context.Context, enriched []model.EnrichedRecord, now time.Time) (*Result, error) {
	if len(enriched) == 0 {
		return nil, eris.New("pipeline: no enriched records to score")
	}
	if err := os.MkdirAll(p.outDir, 0o755); err != nil {
		return nil, eris.Wrap(err, "pipeline: create output dir")
	}

	leads := score.All(enriched, p.weights, now)
	if err := p.writeLeads(leads); err != nil {
		return nil, err
	}

	text := digest.Build(leads, p.topCount)
	if err := os.WriteFile(filepath.Join(p.outDir, FileDigest), []byte(text), 0o644); err != nil {
		return nil, eris.Wrap(err, "pipeline: write digest")
	}

	delivery := p.notifier.Deliver(ctx, text)

	return &Result{
		Records:  len(enriched),
		Leads:    leads,
		Digest:   text,
		Delivery: delivery,
		OutDir:   p.outDir,
	}, nil
}

func (p *Pipeline) writeLeads(leads []model.ScoredLead) error {
	if err := export.WriteJSON(filepath.Join(p.outDir, FileLeads), leads); err != nil {
		return err
	}
	flat := export.FlattenAll(leads)
	if err := export.WriteCSV(filepath.Join(p.outDir, FileLeadsCSV), flat); err != nil {
		return err
	}
	if err := export.WriteXLSX(filepath.Join(p.outDir, FileLeadsXLS), flat); err != nil {
		return err
	}
	return nil
}
