// Package pipeline turns raw model completions into validated domain
// objects: prompt construction, completion calls, JSON normalization,
// scrape/performance enrichment, and per-competitor batch isolation.
package pipeline

import (
	"context"

	"github.com/sells-group/compintel/internal/config"
	"github.com/sells-group/compintel/internal/model"
)

// ContentExtractor fetches a page's plain-text bundle. A nil result
// means the page was unavailable.
type ContentExtractor interface {
	Extract(ctx context.Context, targetURL string) *model.PageContent
}

// Service orchestrates the analysis pipeline. All collaborators are
// injected at construction; nothing reads ambient state at call time.
type Service struct {
	gateway   *Gateway
	extractor ContentExtractor
	prober    *Prober
	cfg       config.AnalyzerConfig
}

// NewService creates a Service from its collaborators.
func NewService(gateway *Gateway, extractor ContentExtractor, prober *Prober, cfg config.AnalyzerConfig) *Service {
	return &Service{
		gateway:   gateway,
		extractor: extractor,
		prober:    prober,
		cfg:       cfg,
	}
}

// Gateway exposes the completion gateway, primarily for the demo-mode
// check at the API boundary.
func (s *Service) Gateway() *Gateway {
	return s.gateway
}
