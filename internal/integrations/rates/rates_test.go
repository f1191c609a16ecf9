package rates

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cameronehrlich/deals-sub001/internal/config"
)

const sampleFeed = `<?xml version="1.0" encoding="utf-8"?>
<observations>
  <observation date="2026-08-06" value="6.85"/>
  <observation date="2026-08-13" value="6.79"/>
  <observation date="2026-08-20" value="6.72"/>
</observations>`

func TestParseLatestRate(t *testing.T) {
	rate, err := parseLatestRate([]byte(sampleFeed))
	require.NoError(t, err)
	assert.InDelta(t, 0.0672, rate, 1e-9)
}

func TestParseLatestRate_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not XML", `{"rate": 6.72}`},
		{"no observations", `<observations></observations>`},
		{"missing value attribute", `<observations><observation date="2026-08-20"/></observations>`},
		{"unparseable value", `<observations><observation value="n/a"/></observations>`},
		{"rate out of range", `<observations><observation value="99.9"/></observations>`},
		{"zero rate", `<observations><observation value="0"/></observations>`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseLatestRate([]byte(tc.body))
			assert.Error(t, err)
		})
	}
}

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Rates.FeedURL = url

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewClient(cfg, log)
}

func TestClient_RefreshUpdatesCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	assert.Equal(t, 0.07, c.CurrentRate(), "fallback before first fetch")
	assert.True(t, c.FetchedAt().IsZero())

	require.NoError(t, c.Refresh())
	assert.InDelta(t, 0.0672, c.CurrentRate(), 1e-9)
	assert.False(t, c.FetchedAt().IsZero())
}

func TestClient_RefreshFailureKeepsCachedRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	assert.Error(t, c.Refresh())
	assert.Equal(t, 0.07, c.CurrentRate())
}
