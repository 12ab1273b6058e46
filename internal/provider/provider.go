// Package provider supplies ordered business-record sequences to the
// pipeline, from a live scraping provider, a JSON file, or the
// deterministic generator. The pipeline does not care which.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/reviewlead-cli/internal/model"
)

// Source is anything that can produce a batch of business records.
type Source interface {
	Fetch(ctx context.Context) ([]model.BusinessRecord, error)
}

// FileSource reads records from a JSON file, typically a previous run's
// raw output.
type FileSource struct {
	Path string
}

// Fetch loads and decodes the record file. An empty record set is an
// error: the pipeline must halt rather than emit empty artifacts.
func (s FileSource) Fetch(ctx context.Context) ([]model.BusinessRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "provider: fetch cancelled")
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, eris.Wrap(err, fmt.Sprintf("provider: read records file %s", s.Path))
	}

	var records []model.BusinessRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, eris.Wrap(err, fmt.Sprintf("provider: parse records file %s", s.Path))
	}
	if len(records) == 0 {
		return nil, eris.Errorf("provider: records file %s contains no records", s.Path)
	}

	for i := range records {
		if records[i].Source == "" {
			records[i].Source = model.SourceFile
		}
	}
	return records, nil
}
