package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// FallbackEURToUSD is used whenever no live rate can be resolved. The
// pipeline must never fail for lack of a rate; a slightly stale constant is
// acceptable for reporting.
const FallbackEURToUSD = 1.08

const cacheTTL = 24 * time.Hour

// Provider resolves the EUR→USD rate once per reporting run. The
// computation core receives the resolved number, never the provider.
type Provider interface {
	EURToUSD(ctx context.Context) float64
}

// Static always returns a fixed rate.
type Static float64

func (s Static) EURToUSD(context.Context) float64 { return float64(s) }

// HTTPProvider fetches the rate from a frankfurter-style JSON endpoint and
// caches it for 24 hours. Any failure degrades to FallbackEURToUSD without
// poisoning the cache, so the next run retries.
type HTTPProvider struct {
	url    string
	client *http.Client

	mu        sync.Mutex
	rate      float64
	fetchedAt time.Time
	now       func() time.Time
}

func NewHTTPProvider(url string, client *http.Client) *HTTPProvider {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPProvider{url: url, client: client, now: time.Now}
}

func (p *HTTPProvider) EURToUSD(ctx context.Context) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.rate > 0 && p.now().Sub(p.fetchedAt) < cacheTTL {
		return p.rate
	}

	rate, err := p.fetch(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Float64("fallback", FallbackEURToUSD).
			Msg("eur/usd rate fetch failed, using fallback")
		return FallbackEURToUSD
	}

	p.rate = rate
	p.fetchedAt = p.now()
	return rate
}

func (p *HTTPProvider) fetch(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate endpoint returned %d", resp.StatusCode)
	}

	var body struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode rate response: %w", err)
	}

	rate, ok := body.Rates["USD"]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("rate response has no usable USD rate")
	}
	return rate, nil
}
