package provider

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/reviewlead-cli/internal/model"
	"github.com/sells-group/reviewlead-cli/pkg/outscraper"
)

// LiveSource adapts the scraping-provider client to the Source interface.
type LiveSource struct {
	Client   outscraper.Client
	Query    string
	Location string
	Limit    int
}

// Fetch runs one provider search. An empty result set is an error.
func (s LiveSource) Fetch(ctx context.Context) ([]model.BusinessRecord, error) {
	records, err := s.Client.Search(ctx, s.Query, s.Location, s.Limit)
	if err != nil {
		return nil, eris.Wrap(err, "provider: search")
	}
	if len(records) == 0 {
		return nil, eris.Errorf("provider: no businesses found for query %q", s.Query)
	}
	return records, nil
}
