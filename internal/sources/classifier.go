package sources

import (
	"net/url"
	"strings"
)

// Host tokens that mark a URL as served by the application itself.
var internalHostTokens = []string{"dataidea.org", "localhost"}

// Schemes whose URLs must carry a host to be considered absolute.
var hostSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
	"ws":    true,
	"wss":   true,
}

// parseAbsolute parses raw as an absolute URL. Relative paths and free text are rejected.
func parseAbsolute(raw string) (*url.URL, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return nil, false
	}
	if hostSchemes[strings.ToLower(u.Scheme)] && u.Host == "" {
		return nil, false
	}
	return u, true
}

// IsExternalLink reports whether rawURL points outside the application's domain family.
// Values that do not parse as absolute URLs are treated as relative paths, i.e. internal.
func IsExternalLink(rawURL string) bool {
	u, ok := parseAbsolute(rawURL)
	if !ok {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, token := range internalHostTokens {
		if strings.Contains(host, token) {
			return false
		}
	}
	return true
}

// Detect maps rawURL to a hosting provider. It returns nil only when rawURL is empty or
// not an absolute URL; unknown hosts get a generic descriptor carrying the hostname.
func Detect(rawURL string) *Source {
	u, ok := parseAbsolute(rawURL)
	if !ok {
		return nil
	}
	host := strings.ToLower(u.Hostname())

	for _, s := range registry {
		if strings.Contains(host, s.Domain) {
			return &s
		}
	}

	switch {
	case strings.Contains(host, "amazonaws.com") || strings.Contains(host, "s3"):
		s := mustLookup("aws")
		return &s
	case strings.Contains(host, "googleapis.com") || strings.Contains(host, "gcs"):
		s := mustLookup("google-cloud")
		return &s
	}

	return &Source{
		Name:        "External Source",
		Domain:      host,
		Color:       GenericColor,
		Description: "External Dataset",
	}
}

// DisplayName returns the provider name for rawURL, or "Unknown Source".
func DisplayName(rawURL string) string {
	if s := Detect(rawURL); s != nil {
		return s.Name
	}
	return "Unknown Source"
}

// DomainFromURL returns the hostname of rawURL, or "Unknown" when it does not parse.
func DomainFromURL(rawURL string) string {
	u, ok := parseAbsolute(rawURL)
	if !ok {
		return "Unknown"
	}
	return u.Hostname()
}

// IsValidURL is a format check only; it does not contact the host.
func IsValidURL(rawURL string) bool {
	_, ok := parseAbsolute(rawURL)
	return ok
}
