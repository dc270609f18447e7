package model

// CompetitorAnalysis is the full structured analysis of a single
// competitor URL. Immutable once produced; the collection of these
// forms the session report.
type CompetitorAnalysis struct {
	CompetitorName string               `json:"competitorName"`
	URL            string               `json:"url"`
	Pricing        Pricing              `json:"pricing"`
	Products       []string             `json:"products"`
	Messaging      Messaging            `json:"messaging"`
	Insights       Insights             `json:"insights"`
	Performance    *PerformanceSnapshot `json:"performance,omitempty"`
}

// Pricing groups a competitor's pricing tiers in extraction order.
type Pricing struct {
	Plans []PricingPlan `json:"plans"`
}

// PricingPlan is one pricing tier. Price is display-formatted
// (e.g. "$79/mo", "$0/mo" for free tiers).
type PricingPlan struct {
	Name             string   `json:"name"`
	Price            string   `json:"price"`
	BillingFrequency string   `json:"billingFrequency"`
	Features         []string `json:"features"`
}

// Messaging captures a competitor's homepage positioning copy.
type Messaging struct {
	Headline         string   `json:"headline"`
	ValueProposition string   `json:"valueProposition"`
	TargetAudience   string   `json:"targetAudience"`
	Differentiators  []string `json:"differentiators"`
}

// Insights holds the model's strategic read on a competitor.
type Insights struct {
	Strengths   []string `json:"strengths"`
	Positioning string   `json:"positioning"`
	Strategy    string   `json:"strategy"`
}

// PlanByName returns the first plan whose name matches exactly.
// Plan names are the join key when comparing tiers across competitors;
// matching is case-sensitive with no fuzzing.
func (p Pricing) PlanByName(name string) (PricingPlan, bool) {
	for _, plan := range p.Plans {
		if plan.Name == name {
			return plan, true
		}
	}
	return PricingPlan{}, false
}
