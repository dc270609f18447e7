package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/compintel/internal/config"
	"github.com/sells-group/compintel/internal/pipeline"
	"github.com/sells-group/compintel/internal/sample"
	"github.com/sells-group/compintel/internal/scrape"
)

const maxDemoAnalyses = 3

// buildService wires the analysis pipeline from config. Without a live
// completion credential the service still starts, in demo mode.
func buildService(c *config.Config) *pipeline.Service {
	gateway := pipeline.NewGateway(c.Anthropic)
	if !gateway.Live() {
		zap.L().Warn("no anthropic credential configured, running in demo mode")
	}
	return pipeline.NewService(
		gateway,
		scrape.NewExtractor(c.Scrape),
		pipeline.NewProber(c.PageSpeed),
		c.Analyzer,
	)
}

// runClassify classifies a site, serving the canned profile when no
// credential is configured, like the HTTP endpoints do.
func runClassify(ctx context.Context, svc *pipeline.Service, siteURL string) (any, error) {
	if !svc.Gateway().Live() {
		profile := sample.SiteProfile()
		profile.URL = siteURL
		return profile, nil
	}
	profile, err := svc.ClassifySite(ctx, siteURL)
	if err != nil {
		return nil, eris.Wrap(err, "classify site")
	}
	return profile, nil
}

// runSuggest suggests competitors, with the same demo fallback.
func runSuggest(ctx context.Context, svc *pipeline.Service, siteURL, industry, businessModel string) (any, error) {
	if !svc.Gateway().Live() {
		return sample.Candidates(), nil
	}
	candidates, err := svc.SuggestCompetitors(ctx, siteURL, industry, businessModel)
	if err != nil {
		return nil, eris.Wrap(err, "suggest competitors")
	}
	return candidates, nil
}

// runAnalyzeBatch analyzes a competitor batch, with the same demo
// fallback capped at the sample count.
func runAnalyzeBatch(ctx context.Context, svc *pipeline.Service, urls []string) (any, error) {
	if !svc.Gateway().Live() {
		n := len(urls)
		if n > maxDemoAnalyses {
			n = maxDemoAnalyses
		}
		return sample.Analyses(n), nil
	}
	analyses, err := svc.AnalyzeCompetitors(ctx, urls)
	if err != nil {
		return nil, eris.Wrap(err, "analyze competitors")
	}
	return analyses, nil
}

// printJSON writes a value to stdout as indented JSON, for the one-shot
// commands.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return eris.Wrap(err, "encode output")
	}
	return nil
}
