package rates

import (
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"github.com/cameronehrlich/deals-sub001/internal/config"
)

// Client fetches the current average 30-year fixed mortgage rate from an
// XML feed and caches the latest observation. The feed is expected to
// publish observations as
//
//	<observations>
//	  <observation date="2026-08-20" value="6.72"/>
//	</observations>
//
// with value in percent, newest last. Until the first successful fetch
// the configured fallback rate is served.
type Client struct {
	url      string
	fallback float64
	client   *http.Client
	log      *logrus.Logger

	mu        sync.RWMutex
	rate      float64
	fetchedAt time.Time
}

// NewClient initializes a rates client serving the fallback rate.
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url:      cfg.Rates.FeedURL,
		fallback: cfg.Rates.FallbackRate,
		client: &http.Client{
			Timeout: cfg.Rates.Timeout,
		},
		log:  log,
		rate: cfg.Rates.FallbackRate,
	}
}

// Refresh fetches the feed and updates the cached rate. The previous
// value (or the fallback) keeps serving on failure.
func (c *Client) Refresh() error {
	body, err := c.fetch()
	if err != nil {
		return err
	}

	rate, err := parseLatestRate(body)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.rate = rate
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	c.log.Infof("Refreshed market mortgage rate: %.2f%%", rate*100)
	return nil
}

// CurrentRate returns the cached market rate as a decimal (0.07 = 7%).
func (c *Client) CurrentRate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rate
}

// FetchedAt returns when the cached rate was last refreshed; zero when
// still serving the fallback.
func (c *Client) FetchedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fetchedAt
}

func (c *Client) fetch() ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rate feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debugf("Rate feed XML response: %s", string(body))
	return body, nil
}

// parseLatestRate extracts the newest observation and converts percent
// to a decimal rate.
func parseLatestRate(body []byte) (float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return 0, fmt.Errorf("failed to parse XML: %w", err)
	}

	observations := doc.FindElements("//observation")
	if len(observations) == 0 {
		return 0, fmt.Errorf("no rate observations found in feed")
	}

	latest := observations[len(observations)-1]
	raw := latest.SelectAttrValue("value", "")
	if raw == "" {
		return 0, fmt.Errorf("latest observation has no value attribute")
	}

	var pct float64
	if _, err := fmt.Sscanf(raw, "%f", &pct); err != nil {
		return 0, fmt.Errorf("failed to parse rate %q: %v", raw, err)
	}
	if pct <= 0 || pct >= 30 {
		return 0, fmt.Errorf("rate %.2f%% outside sane range", pct)
	}
	return pct / 100, nil
}
