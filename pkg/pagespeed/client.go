// Package pagespeed provides a client for the Google PageSpeed Insights
// v5 API.
package pagespeed

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

// categories are the four Lighthouse categories requested on every run.
var categories = []string{"performance", "accessibility", "best-practices", "seo"}

// Client defines the PageSpeed Insights operations.
type Client interface {
	// Run scores a URL across the four Lighthouse categories.
	Run(ctx context.Context, targetURL string) (*RunResponse, error)
}

// RunResponse is the parsed PageSpeed API response.
type RunResponse struct {
	LighthouseResult *LighthouseResult `json:"lighthouseResult"`
	Error            *APIError         `json:"error"`
}

// APIError is the error envelope the API returns in place of a result.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LighthouseResult holds category scores and named audits.
type LighthouseResult struct {
	Categories Categories       `json:"categories"`
	Audits     map[string]Audit `json:"audits"`
}

// Categories holds the per-category scores as fractions in [0,1].
type Categories struct {
	Performance   Category `json:"performance"`
	Accessibility Category `json:"accessibility"`
	BestPractices Category `json:"best-practices"`
	SEO           Category `json:"seo"`
}

// Category is a single scored Lighthouse category.
type Category struct {
	Score float64 `json:"score"`
}

// Audit is a single named Lighthouse audit with its display value.
type Audit struct {
	DisplayValue string `json:"displayValue"`
}

// Option configures the PageSpeed client.
type Option func(*httpClient)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a new PageSpeed Insights client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: "https://www.googleapis.com",
		http: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *httpClient) Run(ctx context.Context, targetURL string) (*RunResponse, error) {
	q := url.Values{}
	q.Set("url", targetURL)
	q.Set("key", c.apiKey)
	for _, cat := range categories {
		q.Add("category", cat)
	}
	reqURL := c.baseURL + "/pagespeedonline/v5/runPagespeed?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "pagespeed: create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "pagespeed: request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "pagespeed: read response body")
	}

	var result RunResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "pagespeed: unmarshal response")
	}

	// The API reports failures inside a 200 body as often as via status
	// codes; surface both the same way.
	if result.LighthouseResult == nil {
		if result.Error != nil {
			return nil, eris.Errorf("pagespeed: api error %d: %s", result.Error.Code, result.Error.Message)
		}
		return nil, eris.Errorf("pagespeed: status %d: missing lighthouse result", resp.StatusCode)
	}

	return &result, nil
}
