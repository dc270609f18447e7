package pagespeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/pagespeedonline/v5/runPagespeed", r.URL.Path)
		assert.Equal(t, "https://acme.test", r.URL.Query().Get("url"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.ElementsMatch(t,
			[]string{"performance", "accessibility", "best-practices", "seo"},
			r.URL.Query()["category"],
		)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"lighthouseResult": {
				"categories": {
					"performance": {"score": 0.93},
					"accessibility": {"score": 0.88},
					"best-practices": {"score": 1.0},
					"seo": {"score": 0.75}
				},
				"audits": {
					"largest-contentful-paint": {"displayValue": "1.2 s"},
					"cumulative-layout-shift": {"displayValue": "0.05"},
					"total-blocking-time": {"displayValue": "150 ms"},
					"speed-index": {"displayValue": "2.1 s"}
				}
			}
		}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	got, err := client.Run(context.Background(), "https://acme.test")

	require.NoError(t, err)
	require.NotNil(t, got.LighthouseResult)
	assert.InDelta(t, 0.93, got.LighthouseResult.Categories.Performance.Score, 1e-9)
	assert.InDelta(t, 1.0, got.LighthouseResult.Categories.BestPractices.Score, 1e-9)
	assert.Equal(t, "1.2 s", got.LighthouseResult.Audits["largest-contentful-paint"].DisplayValue)
	assert.Equal(t, "2.1 s", got.LighthouseResult.Audits["speed-index"].DisplayValue)
}

func TestRun_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"code": 400, "message": "Invalid value for url"}}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := client.Run(context.Background(), "not-a-url")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid value for url")
}

func TestRun_MissingEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := client.Run(context.Background(), "https://acme.test")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing lighthouse result")
}

func TestRun_MalformedJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := client.Run(context.Background(), "https://acme.test")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}

func TestRun_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := client.Run(ctx, "https://acme.test")

	require.Error(t, err)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()
	customClient := &http.Client{}
	c := NewClient("test-key", WithHTTPClient(customClient))
	hc := c.(*httpClient)
	assert.Equal(t, customClient, hc.http)
}
