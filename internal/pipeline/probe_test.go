package pipeline

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/compintel/internal/config"
	"github.com/sells-group/compintel/pkg/pagespeed"
)

func pagespeedResponse(perf, a11y, bp, seo float64) *pagespeed.RunResponse {
	return &pagespeed.RunResponse{
		LighthouseResult: &pagespeed.LighthouseResult{
			Categories: pagespeed.Categories{
				Performance:   pagespeed.Category{Score: perf},
				Accessibility: pagespeed.Category{Score: a11y},
				BestPractices: pagespeed.Category{Score: bp},
				SEO:           pagespeed.Category{Score: seo},
			},
			Audits: map[string]pagespeed.Audit{
				"largest-contentful-paint": {DisplayValue: "1.2 s"},
				"cumulative-layout-shift":  {DisplayValue: "0.05"},
				"total-blocking-time":      {DisplayValue: "150 ms"},
				"speed-index":              {DisplayValue: "2.1 s"},
			},
		},
	}
}

func TestSnapshot_ScalesAndExtracts(t *testing.T) {
	t.Parallel()

	mc := new(mockPagespeedClient)
	mc.On("Run", mock.Anything, "https://acme.test").
		Return(pagespeedResponse(0.934, 0.885, 1.0, 0.0), nil)

	p := NewProberWithClient(mc)
	snap := p.Snapshot(context.Background(), "https://acme.test")

	require.NotNil(t, snap)
	assert.Equal(t, 93, snap.PerformanceScore)
	assert.Equal(t, 89, snap.AccessibilityScore)
	assert.Equal(t, 100, snap.BestPracticesScore)
	assert.Equal(t, 0, snap.SEOScore)
	assert.Equal(t, "1.2 s", snap.Metrics.LargestContentfulPaint)
	assert.Equal(t, "0.05", snap.Metrics.CumulativeLayoutShift)
	assert.Equal(t, "150 ms", snap.Metrics.TotalBlockingTime)
	assert.Equal(t, "2.1 s", snap.Metrics.SpeedIndex)
}

func TestSnapshot_MissingMetricDefaults(t *testing.T) {
	t.Parallel()

	resp := pagespeedResponse(0.5, 0.5, 0.5, 0.5)
	delete(resp.LighthouseResult.Audits, "speed-index")
	resp.LighthouseResult.Audits["total-blocking-time"] = pagespeed.Audit{}

	mc := new(mockPagespeedClient)
	mc.On("Run", mock.Anything, mock.Anything).Return(resp, nil)

	p := NewProberWithClient(mc)
	snap := p.Snapshot(context.Background(), "https://acme.test")

	require.NotNil(t, snap)
	assert.Equal(t, "N/A", snap.Metrics.SpeedIndex)
	assert.Equal(t, "N/A", snap.Metrics.TotalBlockingTime)
	assert.Equal(t, "1.2 s", snap.Metrics.LargestContentfulPaint)
}

func TestSnapshot_RunFailureIsAbsence(t *testing.T) {
	t.Parallel()

	mc := new(mockPagespeedClient)
	mc.On("Run", mock.Anything, mock.Anything).Return(nil, eris.New("quota exceeded"))

	p := NewProberWithClient(mc)
	assert.Nil(t, p.Snapshot(context.Background(), "https://acme.test"))
}

func TestSnapshot_NoCredentialNoNetworkCall(t *testing.T) {
	t.Parallel()

	p := NewProber(config.PageSpeedConfig{Key: ""})

	// Repeated calls stay absent and never reach a client.
	assert.Nil(t, p.Snapshot(context.Background(), "https://acme.test"))
	assert.Nil(t, p.Snapshot(context.Background(), "https://other.test"))
}

func TestScaleScore_Bounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fraction float64
		want     int
	}{
		{0.0, 0},
		{0.005, 1},
		{0.5, 50},
		{0.995, 100},
		{1.0, 100},
		{1.2, 100},
		{-0.1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scaleScore(tt.fraction), "fraction %v", tt.fraction)
	}
}
