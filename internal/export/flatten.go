// Package export projects scored leads into flat tabular shapes and
// writes the run artifacts: CSV, XLSX, and JSON.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sells-group/reviewlead-cli/internal/model"
)

// Flatten projects one scored lead into its tabular row. Missing
// enrichment sub-blocks become empty cells, never errors. ID, score, and
// priority survive the projection exactly.
func Flatten(lead model.ScoredLead) model.FlatLead {
	biz := lead.Enriched.Business
	enr := lead.Enriched.Enrichment

	flat := model.FlatLead{
		ID:           biz.ID,
		BusinessName: biz.Name,
		Source:       string(biz.Source),
		Category:     biz.Category,
		Rating:       biz.Rating,
		TotalReviews: biz.TotalReviews,
		LeadScore:    lead.Score,
		Priority:     string(lead.Priority),
		Address:      biz.Address,
		Phone:        enr.ContactInfo.Phone,
		Email:        enr.ContactInfo.Email,
		Website:      enr.ContactInfo.Website,
		ListingURL:   biz.URL,
		ReviewTrend:  string(enr.ReviewTrend.Trend),
		TrendChange:  fmt.Sprintf("%.2f", enr.ReviewTrend.Change),
		ResponseRate: enr.ResponseRate.Percentage,
		BusinessSize: enr.BusinessSize.Label,
	}

	if neg := enr.LastNegativeReview; neg != nil {
		flat.LastNegative = neg.Date.Format("2006-01-02")
		flat.DaysSinceNegative = strconv.Itoa(neg.DaysSince)
	}

	if len(enr.NegativeKeywords) > 0 {
		parts := make([]string, len(enr.NegativeKeywords))
		for i, kw := range enr.NegativeKeywords {
			parts[i] = fmt.Sprintf("%s:%d", kw.Word, kw.Count)
		}
		flat.NegativeKeywords = strings.Join(parts, ", ")
	}

	if !biz.ScrapedAt.IsZero() {
		flat.ScrapedAt = biz.ScrapedAt.Format(time.RFC3339)
	}

	return flat
}

// FlattenAll projects every lead, preserving order.
func FlattenAll(leads []model.ScoredLead) []model.FlatLead {
	flat := make([]model.FlatLead, len(leads))
	for i, l := range leads {
		flat[i] = Flatten(l)
	}
	return flat
}
