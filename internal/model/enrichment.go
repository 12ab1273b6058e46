package model

import "time"

// Provenance marks whether a contact field came from the record or was
// synthesized during enrichment.
type Provenance string

const (
	ProvenanceExplicit  Provenance = "explicit"
	ProvenanceEstimated Provenance = "estimated"
)

// ContactInfo holds contact fields plus how the email was obtained.
type ContactInfo struct {
	Phone           string     `json:"phone,omitempty"`
	Email           string     `json:"email,omitempty"`
	Website         string     `json:"website,omitempty"`
	EmailProvenance Provenance `json:"email_provenance,omitempty"`
	HasContact      bool       `json:"has_contact"`
}

// TrendCategory describes the direction of a rating trend.
type TrendCategory string

const (
	TrendWorsening        TrendCategory = "worsening"
	TrendImproving        TrendCategory = "improving"
	TrendStable           TrendCategory = "stable"
	TrendInsufficientData TrendCategory = "insufficient_data"
)

// TrendSeverity grades how sharp a rating decline is.
type TrendSeverity string

const (
	SeverityCritical TrendSeverity = "critical"
	SeverityHigh     TrendSeverity = "high"
	SeverityModerate TrendSeverity = "moderate"
)

// ReviewTrend compares the average rating of the newer half of reviews
// against the older half.
type ReviewTrend struct {
	Trend     TrendCategory `json:"trend"`
	Change    float64       `json:"change"`
	RecentAvg float64       `json:"recent_avg,omitempty"`
	OlderAvg  float64       `json:"older_avg,omitempty"`
	Severity  TrendSeverity `json:"severity"`
}

// SizeTier buckets businesses by review volume.
type SizeTier string

const (
	SizeVerySmall SizeTier = "very_small"
	SizeSmall     SizeTier = "small"
	SizeMedium    SizeTier = "medium"
	SizeLarge     SizeTier = "large"
	SizeVeryLarge SizeTier = "very_large"
)

// BusinessSize is the review-volume tier of a business.
type BusinessSize struct {
	Tier      SizeTier `json:"tier"`
	Label     string   `json:"label"`
	SizeScore float64  `json:"size_score"`
}

// EngagementTier grades how actively an owner responds to reviews.
type EngagementTier string

const (
	EngagementHigh     EngagementTier = "high"
	EngagementModerate EngagementTier = "moderate"
	EngagementLow      EngagementTier = "low"
)

// ResponseRate is the fraction of reviews carrying an owner response.
type ResponseRate struct {
	Rate       float64        `json:"rate"`
	Percentage string         `json:"percentage"`
	Engagement EngagementTier `json:"engagement"`
}

// KeywordCount is one complaint term with its occurrence count across
// negative reviews.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// RecencyTier grades how recent the last negative review is.
type RecencyTier string

const (
	RecencyVeryRecent RecencyTier = "very_recent"
	RecencyRecent     RecencyTier = "recent"
	RecencyOld        RecencyTier = "old"
)

// LastNegative describes the most recent review rated 2 or below.
type LastNegative struct {
	Date      time.Time   `json:"date"`
	DaysSince int         `json:"days_since"`
	Recency   RecencyTier `json:"recency"`
}

// EnrichmentBlock holds all derived signals for one business.
type EnrichmentBlock struct {
	ContactInfo        ContactInfo    `json:"contact_info"`
	ReviewTrend        ReviewTrend    `json:"review_trend"`
	BusinessSize       BusinessSize   `json:"business_size"`
	ResponseRate       ResponseRate   `json:"response_rate"`
	NegativeKeywords   []KeywordCount `json:"negative_review_keywords,omitempty"`
	LastNegativeReview *LastNegative  `json:"last_negative_review,omitempty"`
}

// EnrichedRecord layers derived signals over a raw record. The base
// record is carried by value and never modified.
type EnrichedRecord struct {
	Business   BusinessRecord  `json:"business"`
	Enrichment EnrichmentBlock `json:"enrichment"`
}
