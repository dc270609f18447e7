package pipeline

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/compintel/internal/config"
	"github.com/sells-group/compintel/pkg/anthropic"
)

// gatewaySystemPrompt establishes the assistant's role for every
// completion the pipeline requests.
const gatewaySystemPrompt = "You are a competitive intelligence analyst. When analyzing websites, use the provided page content and your knowledge of the market to give accurate, up-to-date information. Always return valid JSON responses as requested."

// Gateway is the single abstraction over the completion API. It owns
// the demo-mode decision: a gateway without a real credential reports
// Live() == false, and asking it to Complete anyway yields a
// GatewayError rather than a call.
type Gateway struct {
	client anthropic.Client
	cfg    config.AnthropicConfig
	live   bool
}

// NewGateway creates a Gateway. A missing or placeholder key produces a
// non-live gateway with no underlying client.
func NewGateway(cfg config.AnthropicConfig) *Gateway {
	g := &Gateway{cfg: cfg}
	if key := strings.TrimSpace(cfg.Key); key != "" && key != config.PlaceholderKey {
		g.client = anthropic.NewClient(key)
		g.live = true
	}
	return g
}

// NewGatewayWithClient creates a live Gateway around an existing client.
// Used by tests to inject fakes.
func NewGatewayWithClient(client anthropic.Client, cfg config.AnthropicConfig) *Gateway {
	return &Gateway{client: client, cfg: cfg, live: true}
}

// Live reports whether a real completion credential is configured.
// Endpoints check this once and serve canned sample data when false.
func (g *Gateway) Live() bool {
	return g.live
}

// Complete sends one prompt and returns the raw completion text.
//
// The augmented flag marks prompts that would benefit from
// retrieval-augmented generation. It currently selects the same model
// either way; it is kept so call sites already declare intent for when
// model differentiation lands.
func (g *Gateway) Complete(ctx context.Context, prompt string, augmented bool) (string, error) {
	_ = augmented

	if g.client == nil {
		return "", &GatewayError{Err: eris.New("no completion credential configured")}
	}

	temp := g.cfg.Temperature
	resp, err := g.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       g.cfg.Model,
		MaxTokens:   g.cfg.MaxTokens,
		System:      gatewaySystemPrompt,
		Temperature: &temp,
		Messages: []anthropic.Message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", &GatewayError{Err: err}
	}

	resp.Usage.LogCost(g.cfg.Model, "complete")

	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "" || b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	return sb.String(), nil
}
