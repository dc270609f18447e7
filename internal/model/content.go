package model

// PageContent is the bounded plain-text bundle extracted from a page.
// A nil *PageContent means extraction was unavailable for the URL;
// callers treat that as expected degradation, not an error.
type PageContent struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Headings    []string `json:"headings"`
	Text        string   `json:"text"`
}

// Empty reports whether nothing usable was extracted.
func (c *PageContent) Empty() bool {
	return c == nil || (c.Title == "" && c.Description == "" && len(c.Headings) == 0 && c.Text == "")
}
