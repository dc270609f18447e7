package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/compintel/internal/model"
)

// classifyResult is the JSON shape the model returns for site
// classification.
type classifyResult struct {
	Industry      string   `json:"industry"`
	BusinessModel string   `json:"businessModel"`
	Products      []string `json:"products"`
	TargetMarket  string   `json:"targetMarket"`
}

// ClassifySite produces a structured profile for a site URL. Extraction
// and performance-probe failures degrade gracefully; only a gateway or
// normalization failure aborts.
func (s *Service) ClassifySite(ctx context.Context, siteURL string) (*model.SiteProfile, error) {
	log := zap.L().With(zap.String("url", siteURL))

	content := s.extractor.Extract(ctx, siteURL)
	if content.Empty() {
		log.Info("classify: no page content extracted, prompting from URL alone")
	}

	raw, err := s.gateway.Complete(ctx, buildClassifyPrompt(siteURL, content), true)
	if err != nil {
		return nil, err
	}

	parsed, err := Normalize[classifyResult](raw)
	if err != nil {
		return nil, err
	}

	profile := &model.SiteProfile{
		URL:           siteURL,
		Industry:      parsed.Industry,
		BusinessModel: parsed.BusinessModel,
		Products:      parsed.Products,
		TargetMarket:  parsed.TargetMarket,
	}

	// Best effort: absence of performance data never aborts
	// classification.
	profile.Performance = s.prober.Snapshot(ctx, siteURL)

	log.Info("classify: site profiled",
		zap.String("industry", profile.Industry),
		zap.String("business_model", profile.BusinessModel),
		zap.Bool("performance", profile.Performance != nil),
	)
	return profile, nil
}
