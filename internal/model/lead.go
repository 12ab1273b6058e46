package model

// Priority is the outreach tier derived from the final lead score.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// FactorDetail records the inputs and points of one scoring factor.
// Only factors that awarded points appear in a lead's details.
type FactorDetail struct {
	Inputs map[string]any `json:"inputs"`
	Points int            `json:"points"`
}

// ScoredLead is an enriched record with its opportunity score attached.
type ScoredLead struct {
	Enriched EnrichedRecord          `json:"enriched"`
	Score    int                     `json:"score"`
	Details  map[string]FactorDetail `json:"scoring_details"`
	Priority Priority                `json:"priority"`
}

// FlatLead is the tabular projection of a ScoredLead for CSV/XLSX export.
// Column order is fixed by the csv tags' declaration order.
type FlatLead struct {
	ID                string  `csv:"ID" json:"id"`
	BusinessName      string  `csv:"Business Name" json:"business_name"`
	Source            string  `csv:"Source" json:"source"`
	Category          string  `csv:"Category" json:"category"`
	Rating            float64 `csv:"Rating" json:"rating"`
	TotalReviews      int     `csv:"Total Reviews" json:"total_reviews"`
	LeadScore         int     `csv:"Lead Score" json:"lead_score"`
	Priority          string  `csv:"Priority" json:"priority"`
	Address           string  `csv:"Address" json:"address"`
	Phone             string  `csv:"Phone" json:"phone"`
	Email             string  `csv:"Email" json:"email"`
	Website           string  `csv:"Website" json:"website"`
	ListingURL        string  `csv:"Listing URL" json:"listing_url"`
	ReviewTrend       string  `csv:"Review Trend" json:"review_trend"`
	TrendChange       string  `csv:"Trend Change" json:"trend_change"`
	ResponseRate      string  `csv:"Response Rate" json:"response_rate"`
	BusinessSize      string  `csv:"Business Size" json:"business_size"`
	LastNegative      string  `csv:"Last Negative Review" json:"last_negative_review"`
	DaysSinceNegative string  `csv:"Days Since Negative" json:"days_since_negative"`
	NegativeKeywords  string  `csv:"Negative Keywords" json:"negative_keywords"`
	ScrapedAt         string  `csv:"Scraped At" json:"scraped_at"`
}

// DeliveryResult reports the outcome of one digest delivery attempt.
type DeliveryResult struct {
	Sent   bool   `json:"sent"`
	Reason string `json:"reason,omitempty"`
}
