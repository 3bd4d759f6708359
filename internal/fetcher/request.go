package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// getJSON issues GET base+path(?query) and decodes a JSON body into out.
// subject is only used to label log lines.
func getJSON(ctx context.Context, client *http.Client, base, path string, query url.Values, subject string, out any) error {
	if client == nil {
		client = http.DefaultClient
	}

	target := base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	logf(subject, "GET %s", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		logf(subject, "request error (%v)", err)
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logf(subject, "non-2xx status=%d", resp.StatusCode)
		return &APIError{StatusCode: resp.StatusCode, Path: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logf(subject, "decode error (%v)", err)
		return fmt.Errorf("decode %s: %w", path, err)
	}
	logf(subject, "ok")
	return nil
}

func trimBaseURL(raw, fallback string) string {
	base := strings.TrimRight(strings.TrimSpace(raw), "/")
	if base == "" {
		return fallback
	}
	return base
}

// slugPath normalises a slug for use as a single path segment.
func slugPath(slug string) string {
	return url.PathEscape(strings.Trim(strings.TrimSpace(slug), "/"))
}
