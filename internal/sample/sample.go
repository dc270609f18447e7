// Package sample holds the canned payloads served in demo mode, when no
// completion credential is configured. The shapes match the live
// responses field for field.
package sample

import "github.com/sells-group/compintel/internal/model"

// SiteProfile is the demo-mode response for analyze-site.
func SiteProfile() model.SiteProfile {
	return model.SiteProfile{
		URL:           "https://example.com",
		Industry:      "Business Analytics & Intelligence",
		BusinessModel: "SaaS (Software as a Service)",
		Products:      []string{"Analytics Platform", "Data Visualization", "Reporting Tools"},
		TargetMarket:  "Small to medium-sized businesses",
	}
}

// Candidates is the demo-mode response for suggest-competitors.
func Candidates() []model.CompetitorCandidate {
	return []model.CompetitorCandidate{
		{
			Name:            "Example Competitor A",
			URL:             "https://example-a.com",
			Icon:            "https://www.google.com/s2/favicons?domain=example-a.com&sz=64",
			Reason:          "Direct competitor in the SMB analytics space with similar pricing and feature set",
			SimilarityScore: 92,
		},
		{
			Name:            "Example Competitor B",
			URL:             "https://example-b.com",
			Icon:            "https://www.google.com/s2/favicons?domain=example-b.com&sz=64",
			Reason:          "Enterprise-focused analytics platform targeting similar use cases with more advanced features",
			SimilarityScore: 85,
		},
		{
			Name:            "Example Competitor C",
			URL:             "https://example-c.com",
			Icon:            "https://www.google.com/s2/favicons?domain=example-c.com&sz=64",
			Reason:          "Real-time analytics competitor with freemium model and marketing-specific features",
			SimilarityScore: 78,
		},
	}
}

// Analyses returns up to n demo-mode competitor analyses, mirroring how
// a live batch of n URLs would come back.
func Analyses(n int) []model.CompetitorAnalysis {
	all := analyses()
	if n < len(all) {
		return all[:n]
	}
	return all
}

func analyses() []model.CompetitorAnalysis {
	return []model.CompetitorAnalysis{
		{
			CompetitorName: "Example Competitor A",
			URL:            "https://example-a.com",
			Pricing: model.Pricing{
				Plans: []model.PricingPlan{
					{
						Name:             "Starter",
						Price:            "$29/mo",
						BillingFrequency: "monthly",
						Features:         []string{"10 users", "Basic support", "5GB storage", "Email integration"},
					},
					{
						Name:             "Professional",
						Price:            "$79/mo",
						BillingFrequency: "monthly",
						Features:         []string{"50 users", "Priority support", "50GB storage", "Advanced analytics", "API access"},
					},
					{
						Name:             "Enterprise",
						Price:            "$199/mo",
						BillingFrequency: "monthly",
						Features:         []string{"Unlimited users", "24/7 support", "Unlimited storage", "Custom integrations", "Dedicated account manager"},
					},
				},
			},
			Products: []string{"Product Analytics", "Dashboard Builder", "Report Generator"},
			Messaging: model.Messaging{
				Headline:         "Analytics Made Simple",
				ValueProposition: "Get insights without complexity",
				TargetAudience:   "Small businesses and startups",
				Differentiators:  []string{"Easy setup", "Affordable pricing", "Beautiful dashboards"},
			},
			Insights: model.Insights{
				Strengths:   []string{"User-friendly interface", "Competitive pricing", "Fast onboarding"},
				Positioning: "Budget-friendly analytics for small teams",
				Strategy:    "Focus on simplicity and affordability to attract SMBs",
			},
		},
		{
			CompetitorName: "Example Competitor B",
			URL:            "https://example-b.com",
			Pricing: model.Pricing{
				Plans: []model.PricingPlan{
					{
						Name:             "Basic",
						Price:            "$49/mo",
						BillingFrequency: "monthly",
						Features:         []string{"25 users", "Standard support", "20GB storage", "Basic reports"},
					},
					{
						Name:             "Growth",
						Price:            "$129/mo",
						BillingFrequency: "monthly",
						Features:         []string{"100 users", "Priority support", "100GB storage", "Advanced reports", "Custom branding"},
					},
					{
						Name:             "Scale",
						Price:            "$299/mo",
						BillingFrequency: "monthly",
						Features:         []string{"Unlimited users", "White-glove support", "Unlimited storage", "AI-powered insights", "Enterprise SLA"},
					},
				},
			},
			Products: []string{"Business Intelligence", "Data Warehouse", "Predictive Analytics", "ML Models"},
			Messaging: model.Messaging{
				Headline:         "Enterprise-Grade Intelligence",
				ValueProposition: "Scale your data operations with confidence",
				TargetAudience:   "Mid-market and enterprise companies",
				Differentiators:  []string{"Enterprise security", "Advanced AI", "Scalable infrastructure"},
			},
			Insights: model.Insights{
				Strengths:   []string{"Robust feature set", "Enterprise credibility", "Advanced capabilities"},
				Positioning: "Premium solution for growing companies",
				Strategy:    "Target mid-market with enterprise features at accessible price points",
			},
		},
		{
			CompetitorName: "Example Competitor C",
			URL:            "https://example-c.com",
			Pricing: model.Pricing{
				Plans: []model.PricingPlan{
					{
						Name:             "Free",
						Price:            "$0/mo",
						BillingFrequency: "monthly",
						Features:         []string{"5 users", "Community support", "1GB storage", "Basic dashboards"},
					},
					{
						Name:             "Pro",
						Price:            "$99/mo",
						BillingFrequency: "monthly",
						Features:         []string{"50 users", "Email support", "25GB storage", "Custom dashboards", "Export data"},
					},
					{
						Name:             "Business",
						Price:            "$249/mo",
						BillingFrequency: "monthly",
						Features:         []string{"200 users", "Phone support", "200GB storage", "White labeling", "Advanced permissions", "SSO"},
					},
				},
			},
			Products: []string{"Real-time Analytics", "Customer Insights", "Marketing Attribution", "A/B Testing"},
			Messaging: model.Messaging{
				Headline:         "Real-Time Insights for Modern Teams",
				ValueProposition: "Make data-driven decisions in real-time",
				TargetAudience:   "Digital-first companies and marketing teams",
				Differentiators:  []string{"Real-time data", "Marketing focus", "Freemium model"},
			},
			Insights: model.Insights{
				Strengths:   []string{"Real-time capabilities", "Marketing-specific features", "Free tier for acquisition"},
				Positioning: "Modern analytics for digital marketing teams",
				Strategy:    "Freemium model to drive adoption, upsell on advanced features",
			},
		},
	}
}
