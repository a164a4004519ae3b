package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Error definitions for the fetch package.
var (
	ErrUnreachable = errors.New("fetch: resource unreachable")
	ErrRejected    = errors.New("fetch: resource rejected by origin")
)

// DefaultTimeout bounds a single retrieval attempt.
const DefaultTimeout = 30 * time.Second

// Client retrieves remote byte payloads (audio and image resources) with a
// bounded timeout and a single attempt per request. Failures are never
// retried; the dispatcher surfaces them as terminal responses. An optional
// LRU cache avoids re-downloading a resource referenced by several requests.
type Client struct {
	http  *http.Client
	cache *lru.Cache[string, []byte]
}

// NewClient creates a fetch client. cacheEntries <= 0 disables caching.
func NewClient(timeout time.Duration, cacheEntries int) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		http: &http.Client{Timeout: timeout},
	}

	if cacheEntries > 0 {
		// lru.New only fails for non-positive sizes, which is excluded here.
		c.cache, _ = lru.New[string, []byte](cacheEntries)
	}

	return c
}

// Fetch retrieves the byte payload at url. Network and timeout failures map
// to ErrUnreachable; any non-2xx status maps to ErrRejected.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	if c.cache != nil {
		if data, ok := c.cache.Get(url); ok {
			return data, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreachable, url, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreachable, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s returned %s", ErrRejected, url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreachable, url, err)
	}

	if c.cache != nil {
		c.cache.Add(url, data)
	}

	return data, nil
}
