package model

// MetricNotAvailable is the sentinel shown when an audit metric is
// missing from the scoring payload.
const MetricNotAvailable = "N/A"

// PerformanceSnapshot holds the four Lighthouse category scores (0-100)
// and the display-formatted timing metrics for one URL. Absent on
// SiteProfile/CompetitorAnalysis when the probe failed or was not
// configured.
type PerformanceSnapshot struct {
	PerformanceScore   int                `json:"performanceScore"`
	AccessibilityScore int                `json:"accessibilityScore"`
	BestPracticesScore int                `json:"bestPracticesScore"`
	SEOScore           int                `json:"seoScore"`
	Metrics            PerformanceMetrics `json:"metrics"`
}

// PerformanceMetrics are pre-formatted display strings straight from
// the scoring API's audits (e.g. "1.2 s", "0.05").
type PerformanceMetrics struct {
	LargestContentfulPaint string `json:"largestContentfulPaint"`
	CumulativeLayoutShift  string `json:"cumulativeLayoutShift"`
	TotalBlockingTime      string `json:"totalBlockingTime"`
	SpeedIndex             string `json:"speedIndex"`
}

// ClampScore bounds a category score to [0, 100].
func ClampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
