package pipeline

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/compintel/internal/model"
	"github.com/sells-group/compintel/pkg/anthropic"
	"github.com/sells-group/compintel/pkg/pagespeed"
)

// --- Anthropic Mock ---

type mockAnthropicClient struct {
	mock.Mock
}

func (m *mockAnthropicClient) CreateMessage(ctx context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*anthropic.MessageResponse), args.Error(1)
}

// textResponse wraps completion text in a single-block response.
func textResponse(text string) *anthropic.MessageResponse {
	return &anthropic.MessageResponse{
		ID:      "msg_test",
		Content: []anthropic.ContentBlock{{Type: "text", Text: text}},
		Usage:   anthropic.TokenUsage{InputTokens: 100, OutputTokens: 50},
	}
}

// --- PageSpeed Mock ---

type mockPagespeedClient struct {
	mock.Mock
}

func (m *mockPagespeedClient) Run(ctx context.Context, targetURL string) (*pagespeed.RunResponse, error) {
	args := m.Called(ctx, targetURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagespeed.RunResponse), args.Error(1)
}

// --- Extractor fake ---

// fakeExtractor serves canned page bundles keyed by URL; unknown URLs
// extract as absent. Safe for concurrent use, since the analyzer fans
// out across competitors.
type fakeExtractor struct {
	mu    sync.Mutex
	pages map[string]*model.PageContent
	calls []string
}

func (f *fakeExtractor) Extract(_ context.Context, targetURL string) *model.PageContent {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, targetURL)
	return f.pages[targetURL]
}
