package main

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/reviewlead-cli/internal/digest"
	"github.com/sells-group/reviewlead-cli/internal/enrich"
	"github.com/sells-group/reviewlead-cli/internal/pipeline"
	"github.com/sells-group/reviewlead-cli/internal/provider"
	"github.com/sells-group/reviewlead-cli/internal/sentiment"
	"github.com/sells-group/reviewlead-cli/pkg/outscraper"
)

var (
	runQuery     string
	runLocation  string
	runLimit     int
	runSynthetic bool
	runSeed      int64
	runInput     string
	runOut       string
	runTop       int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full acquire → enrich → score → export pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		now := time.Now().UTC()

		source, err := buildSource(now)
		if err != nil {
			return err
		}

		p, err := buildPipeline(runOut, runTop)
		if err != nil {
			return err
		}

		result, err := p.Run(ctx, source, now)
		if err != nil {
			return eris.Wrap(err, "pipeline run")
		}

		zap.L().Info("pipeline complete",
			zap.Int("records", result.Records),
			zap.Int("leads", len(result.Leads)),
			zap.String("out_dir", result.OutDir),
			zap.Bool("digest_sent", result.Delivery.Sent),
		)

		fmt.Print(result.Digest)
		return nil
	},
}

// buildSource picks the acquisition source from flags: stored file,
// synthetic generator, or live provider (which requires an API key).
func buildSource(now time.Time) (provider.Source, error) {
	switch {
	case runInput != "":
		return provider.FileSource{Path: runInput}, nil
	case runSynthetic:
		return provider.Generator{Count: runLimit, Seed: runSeed, Now: now}, nil
	default:
		if cfg.Provider.Key == "" {
			return nil, eris.New("provider api key not configured; use --synthetic or --input for offline runs")
		}
		opts := []outscraper.Option{outscraper.WithRateLimit(cfg.Provider.RatePerSecond)}
		if cfg.Provider.BaseURL != "" {
			opts = append(opts, outscraper.WithBaseURL(cfg.Provider.BaseURL))
		}
		client := outscraper.NewClient(cfg.Provider.Key, opts...)
		return provider.LiveSource{
			Client:   client,
			Query:    runQuery,
			Location: runLocation,
			Limit:    runLimit,
		}, nil
	}
}

// buildPipeline assembles the stages from config, loading lexicon
// override files when configured. Empty outDir / zero top fall back to
// the configured defaults.
func buildPipeline(outDir string, top int) (*pipeline.Pipeline, error) {
	var lex sentiment.Lexicon
	if cfg.Lexicon.SentimentPath != "" {
		l, err := sentiment.LoadLexicon(cfg.Lexicon.SentimentPath)
		if err != nil {
			return nil, err
		}
		lex = l
	}

	var complaints enrich.ComplaintLexicon
	if cfg.Lexicon.ComplaintPath != "" {
		c, err := enrich.LoadComplaintLexicon(cfg.Lexicon.ComplaintPath)
		if err != nil {
			return nil, err
		}
		complaints = c
	}

	analyzer := sentiment.NewAnalyzer(lex)
	enricher := enrich.New(analyzer, complaints, cfg.Enrich.Workers)
	notifier := digest.NewNotifier(cfg.Webhook.URL)

	if outDir == "" {
		outDir = cfg.Output.Dir
	}
	if top <= 0 {
		top = cfg.Output.TopCount
	}

	return pipeline.New(enricher, cfg.Scoring.Weights, notifier, outDir, top), nil
}

func init() {
	runCmd.Flags().StringVar(&runQuery, "query", "", "provider search query, e.g. \"restaurants\"")
	runCmd.Flags().StringVar(&runLocation, "location", "", "provider search location")
	runCmd.Flags().IntVar(&runLimit, "limit", 20, "max businesses to acquire")
	runCmd.Flags().BoolVar(&runSynthetic, "synthetic", false, "use the deterministic generator instead of the live provider")
	runCmd.Flags().Int64Var(&runSeed, "seed", 42, "generator seed (with --synthetic)")
	runCmd.Flags().StringVar(&runInput, "input", "", "read records from a JSON file instead of the provider")
	runCmd.Flags().StringVar(&runOut, "out", "", "output directory (default from config)")
	runCmd.Flags().IntVar(&runTop, "top", 0, "leads listed in the digest (default from config)")
	rootCmd.AddCommand(runCmd)
}
