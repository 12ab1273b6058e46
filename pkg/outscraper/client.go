// Package outscraper provides a client for the Outscraper business
// listings API, the live acquisition source for review records.
package outscraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/sells-group/reviewlead-cli/internal/model"
)

const defaultBaseURL = "https://api.outscraper.example.com/maps"

// Client defines the provider operations the pipeline consumes.
type Client interface {
	// Search fetches business listings with reviews for a query.
	Search(ctx context.Context, query, location string, limit int) ([]model.BusinessRecord, error)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.client = hc
	}
}

// WithRateLimit overrides the request pacing (requests per second).
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

type httpClient struct {
	key     string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates an Outscraper client. Requests are paced at 2/s by
// default, which is below the provider's documented ceiling.
func NewClient(key string, opts ...Option) Client {
	c := &httpClient{
		key:     key,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(2), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchResponse is the provider's wire shape for a search call.
type searchResponse struct {
	Status string         `json:"status"`
	Data   []wireBusiness `json:"data"`
}

type wireBusiness struct {
	PlaceID      string       `json:"place_id"`
	Name         string       `json:"name"`
	Rating       float64      `json:"rating"`
	ReviewsCount int          `json:"reviews_count"`
	Category     string       `json:"category"`
	FullAddress  string       `json:"full_address"`
	Phone        string       `json:"phone"`
	Site         string       `json:"site"`
	Email        string       `json:"email_1"`
	GoogleURL    string       `json:"google_url"`
	Reviews      []wireReview `json:"reviews_data"`
}

type wireReview struct {
	Rating        int    `json:"review_rating"`
	Text          string `json:"review_text"`
	Timestamp     int64  `json:"review_timestamp"`
	OwnerAnswer   string `json:"owner_answer"`
	OwnerAnswerTS int64  `json:"owner_answer_timestamp"`
}

// Search queries the provider and maps the wire records into the
// pipeline shape. The review order the provider returns is preserved.
func (c *httpClient) Search(ctx context.Context, query, location string, limit int) ([]model.BusinessRecord, error) {
	if c.key == "" {
		return nil, eris.New("outscraper: api key not configured")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "outscraper: rate limit wait")
	}

	q := url.Values{}
	q.Set("query", query)
	if location != "" {
		q.Set("location", location)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "outscraper: create request")
	}
	req.Header.Set("X-API-KEY", c.key)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "outscraper: search request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "outscraper: read response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("outscraper: search returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, eris.Wrap(err, "outscraper: parse response")
	}

	now := time.Now().UTC()
	records := make([]model.BusinessRecord, 0, len(parsed.Data))
	for _, w := range parsed.Data {
		records = append(records, mapBusiness(w, now))
	}
	return records, nil
}

func mapBusiness(w wireBusiness, scrapedAt time.Time) model.BusinessRecord {
	reviews := make([]model.Review, 0, len(w.Reviews))
	for _, r := range w.Reviews {
		reviews = append(reviews, model.Review{
			Rating:        r.Rating,
			Text:          r.Text,
			Date:          time.Unix(r.Timestamp, 0).UTC(),
			OwnerResponse: r.OwnerAnswer != "" || r.OwnerAnswerTS > 0,
		})
	}

	id := w.PlaceID
	if id == "" {
		id = fmt.Sprintf("biz-%s", url.QueryEscape(w.Name))
	}

	return model.BusinessRecord{
		ID:           id,
		Source:       model.SourceOutscraper,
		Name:         w.Name,
		Rating:       w.Rating,
		TotalReviews: w.ReviewsCount,
		Category:     w.Category,
		Address:      w.FullAddress,
		Phone:        w.Phone,
		Website:      w.Site,
		Email:        w.Email,
		URL:          w.GoogleURL,
		ScrapedAt:    scrapedAt,
		Reviews:      reviews,
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
