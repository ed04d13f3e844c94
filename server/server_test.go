package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moto-pile/site/async"
	"github.com/moto-pile/site/content"
	h "github.com/moto-pile/site/handlers"
)

type staticSource struct {
	snap *content.Snapshot
}

func (s staticSource) Current() (*content.Snapshot, async.State[*content.Snapshot]) {
	return s.snap, async.State[*content.Snapshot]{Status: async.StatusSuccess, Result: s.snap}
}

func (s staticSource) Refresh() error        { return nil }
func (s staticSource) Stats() map[string]any { return nil }

func TestRoutes(t *testing.T) {
	h.SetContentSource(staticSource{snap: &content.Snapshot{
		Categories: []content.FAQCategory{{Slug: "buying", Name: "Buying"}},
		FAQs:       []content.FAQ{{ID: 1, Category: "buying", Question: "Is listing free?", Answer: "Yes."}},
	}})
	app := New()

	tests := []struct {
		method string
		target string
		code   int
	}{
		{http.MethodGet, "/", http.StatusFound},
		{http.MethodGet, "/about", http.StatusOK},
		{http.MethodGet, "/faq", http.StatusOK},
		{http.MethodGet, "/faq/list?category=buying", http.StatusOK},
		{http.MethodGet, "/terms", http.StatusNotFound},
		{http.MethodGet, "/sitemap", http.StatusOK},
		{http.MethodGet, "/sitemap.xml", http.StatusOK},
		{http.MethodGet, "/no-such-page", http.StatusNotFound},
		{http.MethodPost, "/api/cookie-consent", http.StatusSeeOther},
		{http.MethodGet, "/api/content", http.StatusOK},
		{http.MethodPost, "/api/content/refresh", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h.SetContentSource(staticSource{})
	app := New()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "go_goroutines")
}
