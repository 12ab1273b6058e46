package model

import (
	"time"
)

// Source identifies where a business record was acquired from.
type Source string

const (
	SourceOutscraper Source = "outscraper"
	SourceSynthetic  Source = "synthetic"
	SourceFile       Source = "file"
)

// BusinessRecord is a raw business listing with its scraped reviews.
type BusinessRecord struct {
	ID           string    `json:"id"`
	Source       Source    `json:"source"`
	Name         string    `json:"name"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"total_reviews"`
	Category     string    `json:"category"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone,omitempty"`
	Website      string    `json:"website,omitempty"`
	Email        string    `json:"email,omitempty"`
	URL          string    `json:"url"`
	ScrapedAt    time.Time `json:"scraped_at"`
	Reviews      []Review  `json:"reviews"`
}

// Review is a single customer review as scraped. Order within
// BusinessRecord.Reviews is scrape order, not guaranteed chronological.
type Review struct {
	Rating        int        `json:"rating"`
	Text          string     `json:"text"`
	Date          time.Time  `json:"date"`
	OwnerResponse bool       `json:"owner_response,omitempty"`
	Sentiment     *Sentiment `json:"sentiment,omitempty"`
}

// SentimentLabel is the categorical polarity of a text.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// Sentiment is the lexicon-derived polarity of a review text.
type Sentiment struct {
	Score         int            `json:"score"`
	Comparative   float64        `json:"comparative"`
	Label         SentimentLabel `json:"label"`
	PositiveWords []string       `json:"positive_words,omitempty"`
	NegativeWords []string       `json:"negative_words,omitempty"`
}
