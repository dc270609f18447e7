package pipeline

import (
	"fmt"
	"strings"

	"github.com/sells-group/compintel/internal/model"
)

const classifyPrompt = `Analyze this website: %s
%s
Identify and extract:
1. The specific industry niche they operate in (not a generic sector — "Freelancer Invoicing Software", not "Software")
2. Business model (e.g., SaaS, E-commerce, Marketplace, etc.)
3. Main products or services they offer (list up to 3)
4. Target market/audience

Base your answer on the actual page content. If the brand name suggests a different business than the content describes, trust the content.

Return ONLY valid JSON with this exact structure:
{
  "industry": "Industry name",
  "businessModel": "Business model type",
  "products": ["Product 1", "Product 2", "Product 3"],
  "targetMarket": "Description of target market"
}

Be concise and accurate. Do not include any explanatory text outside the JSON.`

const suggestPrompt = `Find the top 3 main competitors for this website: %s

Context:
- Industry: %s
- Business Model: %s

Identify the most relevant direct competitors. Exclude large generalized platforms (e.g. Google, Amazon, Microsoft) unless one of their specific competing products is the comparison subject; prefer niche and mid-market peers with similar products, services, and target markets. For each competitor, provide:
1. Company name
2. Website URL
3. A brief reason why they are a competitor (1-2 sentences)
4. Similarity score (0-100, where 100 is most similar)

Return ONLY valid JSON with this exact structure:
{
  "competitors": [
    {
      "name": "Company Name",
      "url": "https://example.com",
      "reason": "Brief explanation of why they are a competitor",
      "similarityScore": 85
    }
  ]
}

Do not include any explanatory text outside the JSON.`

const analyzePrompt = `Analyze this competitor website: %s

%s

Extract and analyze:
- All pricing tiers (name, price, billing frequency, key features list)
- All products/services offered
- Main headline and value proposition from the homepage
- Target audience description
- Key differentiators that make them unique
- Strengths, market positioning, and overall strategy

Base your analysis on the page content above where available. If the brand name suggests a different business than the content describes, trust the content.

Return ONLY valid JSON with this exact structure:
{
  "competitorName": "Company Name",
  "pricing": {
    "plans": [
      {
        "name": "Plan name",
        "price": "$X/mo",
        "billingFrequency": "monthly",
        "features": ["feature1", "feature2", "feature3"]
      }
    ]
  },
  "products": ["Product 1", "Product 2"],
  "messaging": {
    "headline": "Main headline from homepage",
    "valueProposition": "Core value proposition",
    "targetAudience": "Who they target",
    "differentiators": ["Key differentiator 1", "Key differentiator 2"]
  },
  "insights": {
    "strengths": ["Strength 1", "Strength 2"],
    "positioning": "How they position themselves in the market",
    "strategy": "Overall strategic approach"
  }
}

Be thorough and extract all pricing plans completely. Use "$0/mo" for free tiers. Do not include any explanatory text outside the JSON.`

// unfetchablePlaceholder stands in for page content when extraction was
// unavailable for a competitor URL.
const unfetchablePlaceholder = "Page content could not be fetched; rely on general knowledge of this company."

// buildClassifyPrompt renders the site-classification prompt, embedding
// extracted page content when available.
func buildClassifyPrompt(siteURL string, content *model.PageContent) string {
	block := ""
	if !content.Empty() {
		block = "\nExtracted page content:\n" + formatContent(content) + "\n"
	}
	return fmt.Sprintf(classifyPrompt, siteURL, block)
}

// buildSuggestPrompt renders the competitor-suggestion prompt.
func buildSuggestPrompt(userSite, industry, businessModel string) string {
	return fmt.Sprintf(suggestPrompt, userSite, industry, businessModel)
}

// buildAnalyzePrompt renders the per-competitor analysis prompt. When
// content is absent the prompt carries an explicit placeholder instead.
func buildAnalyzePrompt(competitorURL string, content *model.PageContent) string {
	block := unfetchablePlaceholder
	if !content.Empty() {
		block = "Extracted page content:\n" + formatContent(content)
	}
	return fmt.Sprintf(analyzePrompt, competitorURL, block)
}

// formatContent renders a page bundle as labeled prompt lines, skipping
// empty fields.
func formatContent(c *model.PageContent) string {
	var b strings.Builder
	if c.Title != "" {
		b.WriteString("Title: " + c.Title + "\n")
	}
	if c.Description != "" {
		b.WriteString("Description: " + c.Description + "\n")
	}
	if len(c.Headings) > 0 {
		b.WriteString("Headings: " + strings.Join(c.Headings, " | ") + "\n")
	}
	if c.Text != "" {
		b.WriteString("Body text: " + c.Text + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
