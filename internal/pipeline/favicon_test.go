package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rawURL string
		want   string
	}{
		{
			name:   "https url",
			rawURL: "https://rivalcorp.test",
			want:   "https://www.google.com/s2/favicons?domain=rivalcorp.test&sz=64",
		},
		{
			name:   "url with path and port",
			rawURL: "https://rivalcorp.test:8443/pricing",
			want:   "https://www.google.com/s2/favicons?domain=rivalcorp.test&sz=64",
		},
		{
			name:   "schemeless value has no hostname",
			rawURL: "rivalcorp.test",
			want:   placeholderIcon,
		},
		{
			name:   "empty",
			rawURL: "",
			want:   placeholderIcon,
		},
		{
			name:   "unparseable",
			rawURL: "http://[::1]:namedport",
			want:   placeholderIcon,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IconURL(tt.rawURL))
		})
	}
}

func TestManualCandidate(t *testing.T) {
	t.Parallel()

	c := ManualCandidate("RivalCorp", "https://rivalcorp.test")

	assert.Equal(t, "RivalCorp", c.Name)
	assert.Equal(t, "https://rivalcorp.test", c.URL)
	assert.Equal(t, "https://www.google.com/s2/favicons?domain=rivalcorp.test&sz=64", c.Icon)
	assert.Equal(t, "Manually added by user", c.Reason)
	assert.Equal(t, 0, c.SimilarityScore)
}
