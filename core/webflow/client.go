package webflow

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// PageSize is the fixed number of items requested per page.
const PageSize = 100

// Item is one raw CMS record: an untyped field bag keyed by field slug.
type Item map[string]any

// ID returns the source-assigned identifier of the item.
func (i Item) ID() string {
	if id, ok := i["_id"].(string); ok {
		return id
	}
	return ""
}

// Client defines the interface for reading CMS collections.
type Client interface {
	// FetchAll returns every published item of the collection, concatenated
	// across pages in source order.
	FetchAll(ctx context.Context, collectionID string) ([]Item, error)
}

// UpstreamError is a non-success response from the CMS API. It aborts the
// enclosing collection fetch; no partial results are kept and no retry is made.
type UpstreamError struct {
	Collection string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("webflow: collection %s returned status %d: %s", e.Collection, e.StatusCode, e.Body)
}

// page is the envelope returned by the collection items endpoint.
type page struct {
	Items  []Item `json:"items"`
	Count  int    `json:"count"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
	Total  int    `json:"total"`
}

type client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a new CMS API client based on the configuration.
func NewClient(cfg Config) Client {
	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &client{
		cfg: cfg,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}
}

func (c *client) FetchAll(ctx context.Context, collectionID string) ([]Item, error) {
	var all []Item

	// Offsets advance page by page; a short page (fewer than PageSize items,
	// including zero) is the last one. A collection whose size is an exact
	// multiple of PageSize costs one extra empty-result request, which is fine.
	for offset := 0; ; offset += PageSize {
		p, err := c.fetchPage(ctx, collectionID, offset)
		if err != nil {
			return nil, err
		}

		all = append(all, p.Items...)

		if len(p.Items) < PageSize {
			return all, nil
		}
	}
}

func (c *client) fetchPage(ctx context.Context, collectionID string, offset int) (*page, error) {
	url := fmt.Sprintf("%s/collections/%s/items?limit=%d&offset=%d",
		strings.TrimSuffix(c.cfg.BaseURL, "/"), collectionID, PageSize, offset)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("webflow: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("accept-version", c.cfg.APIVersion)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webflow: fetch collection %s: %w", collectionID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("webflow: read response for collection %s: %w", collectionID, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			Collection: collectionID,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var p page
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("webflow: decode page for collection %s: %w", collectionID, err)
	}

	return &p, nil
}
