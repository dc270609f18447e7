package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/compintel/internal/model"
)

// analyzeResult is the JSON shape the model returns for one competitor;
// the URL and performance data are attached by us, not the model.
type analyzeResult struct {
	CompetitorName string          `json:"competitorName"`
	Pricing        model.Pricing   `json:"pricing"`
	Products       []string        `json:"products"`
	Messaging      model.Messaging `json:"messaging"`
	Insights       model.Insights  `json:"insights"`
}

// AnalyzeCompetitors runs the full analysis for each URL independently
// and in isolation. One URL's failure is logged and skipped; it can
// neither abort nor corrupt sibling analyses, and is never retried
// within the batch. Results keep the input order. Only a fully empty
// outcome is an error (ErrNoAnalyses).
//
// URLs are processed concurrently up to the configured limit; each URL
// gets its own deadline so one stalled upstream cannot hold the batch.
func (s *Service) AnalyzeCompetitors(ctx context.Context, urls []string) ([]model.CompetitorAnalysis, error) {
	runID := uuid.New().String()
	log := zap.L().With(zap.String("run_id", runID))
	log.Info("analyze: starting batch", zap.Int("competitors", len(urls)))

	concurrency := s.cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 3
	}
	perURLTimeout := time.Duration(s.cfg.PerURLTimeoutS) * time.Second
	if perURLTimeout <= 0 {
		perURLTimeout = 2 * time.Minute
	}

	results := make([]*model.CompetitorAnalysis, len(urls))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, competitorURL := range urls {
		g.Go(func() error {
			urlCtx, cancel := context.WithTimeout(gCtx, perURLTimeout)
			defer cancel()

			analysis, err := s.analyzeOne(urlCtx, competitorURL)
			if err != nil {
				// Isolation contract: log keyed by URL, skip, no retry.
				log.Warn("analyze: competitor failed, skipping",
					zap.String("url", competitorURL),
					zap.Error(err),
				)
				return nil
			}
			results[i] = analysis
			return nil
		})
	}

	_ = g.Wait()

	analyses := make([]model.CompetitorAnalysis, 0, len(urls))
	for _, r := range results {
		if r != nil {
			analyses = append(analyses, *r)
		}
	}

	if len(analyses) == 0 {
		log.Error("analyze: batch exhausted, no competitor succeeded")
		return nil, ErrNoAnalyses
	}

	log.Info("analyze: batch complete",
		zap.Int("succeeded", len(analyses)),
		zap.Int("failed", len(urls)-len(analyses)),
	)
	return analyses, nil
}

// analyzeOne runs extract → complete → normalize → probe for a single
// competitor URL.
func (s *Service) analyzeOne(ctx context.Context, competitorURL string) (*model.CompetitorAnalysis, error) {
	content := s.extractor.Extract(ctx, competitorURL)

	raw, err := s.gateway.Complete(ctx, buildAnalyzePrompt(competitorURL, content), true)
	if err != nil {
		return nil, err
	}

	parsed, err := Normalize[analyzeResult](raw)
	if err != nil {
		return nil, err
	}

	analysis := &model.CompetitorAnalysis{
		CompetitorName: parsed.CompetitorName,
		URL:            competitorURL,
		Pricing:        parsed.Pricing,
		Products:       parsed.Products,
		Messaging:      parsed.Messaging,
		Insights:       parsed.Insights,
	}

	// Best effort; absence is fine.
	analysis.Performance = s.prober.Snapshot(ctx, competitorURL)

	return analysis, nil
}
