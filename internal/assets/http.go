package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultUserAgent = "gripper-viewer/1.0"

// HTTPSource serves assets from a base URL (e.g. "https://example.org/GripGen/output").
// Responses are never cached: a re-selected variant always refetches.
type HTTPSource struct {
	base   string
	client *http.Client
}

// NewHTTPSource returns a Source that GETs baseURL + "/" + name with a 60 second timeout.
func NewHTTPSource(baseURL string) (*HTTPSource, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("assets: unsupported URL scheme %q", u.Scheme)
	}
	return &HTTPSource{
		base:   strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// Open fetches name. A non-200 status is an error; the body is closed in that case.
func (s *HTTPSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	u := s.base + "/" + escapePath(strings.TrimPrefix(name, "/"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Cache-Control", "no-store")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("assets: %s: HTTP %d", name, resp.StatusCode)
	}
	return resp.Body, nil
}

// escapePath escapes each segment of a slash-separated path.
func escapePath(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
