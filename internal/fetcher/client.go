package fetcher

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultUserAgent identifies the client to the catalog API.
const DefaultUserAgent = "dataidea-cli"

// catalogTransport stamps every request with the client identity and a request id
// so server logs can be matched with ours.
type catalogTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *catalogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	if req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}
	return t.base.RoundTrip(req)
}

// NewClient creates an *http.Client for the catalog and course APIs.
// timeout is the per-request deadline (0 = no timeout).
// userAgent falls back to DefaultUserAgent when empty.
func NewClient(timeout time.Duration, userAgent string) *http.Client {
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &catalogTransport{base: http.DefaultTransport, userAgent: userAgent},
	}
}
