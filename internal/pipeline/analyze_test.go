package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/compintel/internal/model"
	"github.com/sells-group/compintel/pkg/anthropic"
)

// analysisJSON builds a minimal valid analysis payload for a named
// competitor.
func analysisJSON(name string) string {
	return fmt.Sprintf(`{
		"competitorName": %q,
		"pricing": {"plans": [{"name": "Pro", "price": "$29", "billingFrequency": "per month", "features": ["Unlimited boards"]}]},
		"products": ["Task Tracking"],
		"messaging": {"headline": "Work, organized", "valueProposition": "One place for every project", "targetAudience": "Product teams", "differentiators": ["Realtime sync"]},
		"insights": {"strengths": ["Strong integrations"], "positioning": "Premium", "strategy": "Land and expand"}
	}`, name)
}

// matchPromptURL matches a completion request whose prompt mentions the
// given competitor URL.
func matchPromptURL(u string) func(anthropic.MessageRequest) bool {
	return func(req anthropic.MessageRequest) bool {
		return strings.Contains(req.Messages[0].Content, u)
	}
}

func TestAnalyzeCompetitors_AllSucceed(t *testing.T) {
	t.Parallel()

	urls := []string{"https://a.test", "https://b.test", "https://c.test"}
	mc := new(mockAnthropicClient)
	for i, u := range urls {
		mc.On("CreateMessage", mock.Anything, mock.MatchedBy(matchPromptURL(u))).
			Return(textResponse(analysisJSON(fmt.Sprintf("Comp%d", i))), nil)
	}

	svc := newTestService(mc, &fakeExtractor{}, nil)
	analyses, err := svc.AnalyzeCompetitors(context.Background(), urls)

	require.NoError(t, err)
	require.Len(t, analyses, 3)
	// Input order survives concurrent execution.
	for i, a := range analyses {
		assert.Equal(t, fmt.Sprintf("Comp%d", i), a.CompetitorName)
		assert.Equal(t, urls[i], a.URL)
	}
	assert.Equal(t, "Pro", analyses[0].Pricing.Plans[0].Name)
	assert.Equal(t, "per month", analyses[0].Pricing.Plans[0].BillingFrequency)
}

func TestAnalyzeCompetitors_OneFailureIsIsolated(t *testing.T) {
	t.Parallel()

	mc := new(mockAnthropicClient)
	mc.On("CreateMessage", mock.Anything, mock.MatchedBy(matchPromptURL("https://a.test"))).
		Return(textResponse(analysisJSON("Alpha")), nil)
	mc.On("CreateMessage", mock.Anything, mock.MatchedBy(matchPromptURL("https://b.test"))).
		Return(nil, eris.New("overloaded"))
	mc.On("CreateMessage", mock.Anything, mock.MatchedBy(matchPromptURL("https://c.test"))).
		Return(textResponse(analysisJSON("Gamma")), nil)

	svc := newTestService(mc, &fakeExtractor{}, nil)
	analyses, err := svc.AnalyzeCompetitors(context.Background(),
		[]string{"https://a.test", "https://b.test", "https://c.test"})

	require.NoError(t, err)
	require.Len(t, analyses, 2)
	assert.Equal(t, "Alpha", analyses[0].CompetitorName)
	assert.Equal(t, "Gamma", analyses[1].CompetitorName)
}

func TestAnalyzeCompetitors_MalformedOutputSkipsOnlyThatURL(t *testing.T) {
	t.Parallel()

	mc := new(mockAnthropicClient)
	mc.On("CreateMessage", mock.Anything, mock.MatchedBy(matchPromptURL("https://a.test"))).
		Return(textResponse("I could not find pricing information."), nil)
	mc.On("CreateMessage", mock.Anything, mock.MatchedBy(matchPromptURL("https://b.test"))).
		Return(textResponse(analysisJSON("Beta")), nil)

	svc := newTestService(mc, &fakeExtractor{}, nil)
	analyses, err := svc.AnalyzeCompetitors(context.Background(),
		[]string{"https://a.test", "https://b.test"})

	require.NoError(t, err)
	require.Len(t, analyses, 1)
	assert.Equal(t, "Beta", analyses[0].CompetitorName)
}

func TestAnalyzeCompetitors_AllFail(t *testing.T) {
	t.Parallel()

	mc := new(mockAnthropicClient)
	mc.On("CreateMessage", mock.Anything, mock.Anything).Return(nil, eris.New("overloaded"))

	svc := newTestService(mc, &fakeExtractor{}, nil)
	analyses, err := svc.AnalyzeCompetitors(context.Background(),
		[]string{"https://a.test", "https://b.test"})

	assert.Nil(t, analyses)
	assert.ErrorIs(t, err, ErrNoAnalyses)
}

func TestAnalyzeCompetitors_UnfetchablePageStillAnalyzed(t *testing.T) {
	t.Parallel()

	mc := new(mockAnthropicClient)
	mc.On("CreateMessage", mock.Anything, mock.MatchedBy(func(req anthropic.MessageRequest) bool {
		return strings.Contains(req.Messages[0].Content, unfetchablePlaceholder)
	})).Return(textResponse(analysisJSON("Ghost")), nil)

	ext := &fakeExtractor{pages: map[string]*model.PageContent{}}
	svc := newTestService(mc, ext, nil)
	analyses, err := svc.AnalyzeCompetitors(context.Background(), []string{"https://ghost.test"})

	require.NoError(t, err)
	require.Len(t, analyses, 1)
	assert.Equal(t, []string{"https://ghost.test"}, ext.calls)
}

func TestAnalyzeCompetitors_AttachesPerformance(t *testing.T) {
	t.Parallel()

	mc := new(mockAnthropicClient)
	mc.On("CreateMessage", mock.Anything, mock.Anything).
		Return(textResponse(analysisJSON("Alpha")), nil)

	ps := new(mockPagespeedClient)
	ps.On("Run", mock.Anything, "https://a.test").
		Return(pagespeedResponse(0.7, 0.7, 0.7, 0.7), nil)

	svc := newTestService(mc, &fakeExtractor{}, ps)
	analyses, err := svc.AnalyzeCompetitors(context.Background(), []string{"https://a.test"})

	require.NoError(t, err)
	require.NotNil(t, analyses[0].Performance)
	assert.Equal(t, 70, analyses[0].Performance.PerformanceScore)
}
