package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/compintel/internal/model"
)

// suggestResult is the JSON shape the model returns for competitor
// suggestions.
type suggestResult struct {
	Competitors []model.CompetitorCandidate `json:"competitors"`
}

// SuggestCompetitors asks the model for the top direct competitors of a
// profiled site and resolves a favicon reference per candidate. This is
// a single aggregate call: a gateway or normalization failure aborts
// the whole suggestion with no partial list.
func (s *Service) SuggestCompetitors(ctx context.Context, userSite, industry, businessModel string) ([]model.CompetitorCandidate, error) {
	raw, err := s.gateway.Complete(ctx, buildSuggestPrompt(userSite, industry, businessModel), true)
	if err != nil {
		return nil, err
	}

	parsed, err := Normalize[suggestResult](raw)
	if err != nil {
		return nil, err
	}

	candidates := parsed.Competitors
	for i := range candidates {
		candidates[i].Icon = IconURL(candidates[i].URL)
		candidates[i].SimilarityScore = model.ClampScore(candidates[i].SimilarityScore)
	}

	zap.L().Info("suggest: candidates resolved",
		zap.String("user_site", userSite),
		zap.Int("count", len(candidates)),
	)
	return candidates, nil
}

// ManualCandidate builds a user-entered candidate that bypassed
// suggestion, with the fixed zero score and reason.
func ManualCandidate(name, candidateURL string) model.CompetitorCandidate {
	return model.CompetitorCandidate{
		Name:            name,
		URL:             candidateURL,
		Icon:            IconURL(candidateURL),
		Reason:          model.ManualCandidateReason,
		SimilarityScore: 0,
	}
}
