package model

// SiteProfile is the structured classification of a user's website.
// Created once per analyzed URL and immutable after creation.
type SiteProfile struct {
	URL           string               `json:"url"`
	Industry      string               `json:"industry"`
	BusinessModel string               `json:"businessModel"`
	Products      []string             `json:"products"`
	TargetMarket  string               `json:"targetMarket"`
	Performance   *PerformanceSnapshot `json:"performance,omitempty"`
}

// CompetitorCandidate is one suggested competitor for a site.
type CompetitorCandidate struct {
	Name            string `json:"name"`
	URL             string `json:"url"`
	Icon            string `json:"icon"`
	Reason          string `json:"reason"`
	SimilarityScore int    `json:"similarityScore"`
}

// ManualCandidateReason is the fixed reason attached to user-entered
// candidates that were not suggested by the model.
const ManualCandidateReason = "Manually added by user"
