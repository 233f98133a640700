package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/de-tools/profit-atlas/pkg/models/store"
)

// RecordsClient fetches the raw records of one upstream source for an
// inclusive date window. Records come back undecoded; the normalizer owns
// all shape knowledge. Fetch errors propagate — the computation core never
// sees them.
type RecordsClient interface {
	Records(ctx context.Context, from, to time.Time) ([]store.RawRecord, error)
}

type recordsClient struct {
	profile Profile
	hc      *http.Client
}

func NewRecordsClient(profile Profile, hc *http.Client) RecordsClient {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &recordsClient{profile: profile, hc: hc}
}

func (c *recordsClient) Records(ctx context.Context, from, to time.Time) ([]store.RawRecord, error) {
	u, err := url.Parse(c.profile.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url for %s: %w", c.profile.Name, err)
	}
	q := u.Query()
	q.Set("from", from.UTC().Format("2006-01-02"))
	q.Set("to", to.UTC().Format("2006-01-02"))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.profile.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.profile.Token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s fetch failed: %w", c.profile.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %d", c.profile.Name, resp.StatusCode)
	}

	var records []store.RawRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", c.profile.Name, err)
	}
	return records, nil
}
