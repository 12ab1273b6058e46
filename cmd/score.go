package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/reviewlead-cli/internal/model"
)

var (
	scoreInput string
	scoreOut   string
	scoreTop   int
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Re-score stored enriched records and rebuild the exports",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		now := time.Now().UTC()

		data, err := os.ReadFile(scoreInput)
		if err != nil {
			return eris.Wrap(err, fmt.Sprintf("read enriched records %s", scoreInput))
		}
		var enriched []model.EnrichedRecord
		if err := json.Unmarshal(data, &enriched); err != nil {
			return eris.Wrap(err, fmt.Sprintf("parse enriched records %s", scoreInput))
		}

		p, err := buildPipeline(scoreOut, scoreTop)
		if err != nil {
			return err
		}

		result, err := p.Rescore(ctx, enriched, now)
		if err != nil {
			return eris.Wrap(err, "rescore")
		}

		zap.L().Info("rescore complete",
			zap.Int("leads", len(result.Leads)),
			zap.String("out_dir", result.OutDir),
		)

		fmt.Print(result.Digest)
		return nil
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreInput, "input", "out/enriched.json", "enriched records JSON file")
	scoreCmd.Flags().StringVar(&scoreOut, "out", "", "output directory (default from config)")
	scoreCmd.Flags().IntVar(&scoreTop, "top", 0, "leads listed in the digest (default from config)")
	rootCmd.AddCommand(scoreCmd)
}
