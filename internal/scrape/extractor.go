// Package scrape extracts a bounded plain-text representation of a web
// page for prompt construction.
package scrape

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/sells-group/compintel/internal/config"
	"github.com/sells-group/compintel/internal/model"
)

// maxBodyBytes caps how much markup is read before parsing.
const maxBodyBytes = 512 * 1024

// Extractor fetches a URL and reduces it to the title, meta
// description, h1 headings, and truncated body text. Extraction failure
// is expected, not exceptional: every failure path returns nil and the
// caller degrades.
type Extractor struct {
	client       *http.Client
	userAgent    string
	maxBodyChars int
}

// NewExtractor creates an Extractor from config.
func NewExtractor(cfg config.ScrapeConfig) *Extractor {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	maxChars := cfg.MaxBodyChars
	if maxChars <= 0 {
		maxChars = 3000
	}
	return &Extractor{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		userAgent:    cfg.UserAgent,
		maxBodyChars: maxChars,
	}
}

// Extract fetches targetURL and returns its content bundle, or nil when
// the page could not be fetched or parsed.
func (e *Extractor) Extract(ctx context.Context, targetURL string) *model.PageContent {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		zap.L().Warn("scrape: create request", zap.String("url", targetURL), zap.Error(err))
		return nil
	}
	if e.userAgent != "" {
		req.Header.Set("User-Agent", e.userAgent)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		zap.L().Warn("scrape: fetch failed", zap.String("url", targetURL), zap.Error(err))
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		zap.L().Warn("scrape: non-success status",
			zap.String("url", targetURL),
			zap.Int("status", resp.StatusCode),
		)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		zap.L().Warn("scrape: parse failed", zap.String("url", targetURL), zap.Error(err))
		return nil
	}

	return e.extractContent(doc)
}

// extractContent reduces a parsed document to the prompt bundle.
func (e *Extractor) extractContent(doc *goquery.Document) *model.PageContent {
	// Drop non-content elements before any text extraction.
	doc.Find("script, style, nav, footer, iframe, noscript").Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())

	description := ""
	if v, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		description = strings.TrimSpace(v)
	}

	var headings []string
	doc.Find("h1").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			headings = append(headings, text)
		}
	})

	text := truncate(collapseWhitespace(doc.Find("body").Text()), e.maxBodyChars)

	return &model.PageContent{
		Title:       title,
		Description: description,
		Headings:    headings,
		Text:        text,
	}
}

// collapseWhitespace reduces all runs of whitespace to single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate caps s at max bytes without splitting a multi-byte rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
