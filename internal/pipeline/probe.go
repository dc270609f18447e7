package pipeline

import (
	"context"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/sells-group/compintel/internal/config"
	"github.com/sells-group/compintel/internal/model"
	"github.com/sells-group/compintel/pkg/pagespeed"
)

// Prober wraps the performance-scoring API. Every failure mode
// (missing credential, unreachable API, malformed payload) degrades to
// an absent snapshot; a probe can never abort the step that requested
// it.
type Prober struct {
	client   pagespeed.Client
	warnOnce sync.Once
}

// NewProber creates a Prober. An empty credential yields a disabled
// prober that returns absence without network calls.
func NewProber(cfg config.PageSpeedConfig) *Prober {
	p := &Prober{}
	if cfg.Key != "" {
		opts := []pagespeed.Option{}
		if cfg.BaseURL != "" {
			opts = append(opts, pagespeed.WithBaseURL(cfg.BaseURL))
		}
		p.client = pagespeed.NewClient(cfg.Key, opts...)
	}
	return p
}

// NewProberWithClient creates a Prober around an existing client.
// Used by tests to inject fakes.
func NewProberWithClient(client pagespeed.Client) *Prober {
	return &Prober{client: client}
}

// Snapshot scores a URL, returning nil when the probe is unavailable.
func (p *Prober) Snapshot(ctx context.Context, targetURL string) *model.PerformanceSnapshot {
	if p.client == nil {
		p.warnOnce.Do(func() {
			zap.L().Warn("probe: no pagespeed credential configured, performance data disabled")
		})
		return nil
	}

	resp, err := p.client.Run(ctx, targetURL)
	if err != nil {
		zap.L().Warn("probe: pagespeed run failed", zap.String("url", targetURL), zap.Error(err))
		return nil
	}

	lh := resp.LighthouseResult
	return &model.PerformanceSnapshot{
		PerformanceScore:   scaleScore(lh.Categories.Performance.Score),
		AccessibilityScore: scaleScore(lh.Categories.Accessibility.Score),
		BestPracticesScore: scaleScore(lh.Categories.BestPractices.Score),
		SEOScore:           scaleScore(lh.Categories.SEO.Score),
		Metrics: model.PerformanceMetrics{
			LargestContentfulPaint: auditValue(lh.Audits, "largest-contentful-paint"),
			CumulativeLayoutShift:  auditValue(lh.Audits, "cumulative-layout-shift"),
			TotalBlockingTime:      auditValue(lh.Audits, "total-blocking-time"),
			SpeedIndex:             auditValue(lh.Audits, "speed-index"),
		},
	}
}

// scaleScore converts a category fraction in [0,1] to a clamped
// integer score in [0,100].
func scaleScore(fraction float64) int {
	return model.ClampScore(int(math.Round(fraction * 100)))
}

// auditValue returns an audit's display string, or the not-available
// sentinel when the audit is missing or empty.
func auditValue(audits map[string]pagespeed.Audit, key string) string {
	if a, ok := audits[key]; ok && a.DisplayValue != "" {
		return a.DisplayValue
	}
	return model.MetricNotAvailable
}
