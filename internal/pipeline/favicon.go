package pipeline

import (
	"fmt"
	"net/url"
)

// placeholderIcon is served when a candidate URL has no usable hostname.
const placeholderIcon = "/placeholder-logo.png"

// IconURL derives a deterministic favicon reference from a site URL's
// hostname. It never fails: a malformed URL falls back to the
// placeholder.
func IconURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return placeholderIcon
	}
	return fmt.Sprintf("https://www.google.com/s2/favicons?domain=%s&sz=64", u.Hostname())
}
