// Package sources classifies dataset file URLs by where they are hosted.
//
// A URL is either internal (served from the application's own domain family or a
// loopback host) or external. External URLs are matched against an ordered
// registry of known hosting providers so the UI can badge them.
package sources

// Source describes a known hosting provider for dataset files.
type Source struct {
	Key         string `json:"key,omitempty" yaml:"key,omitempty"`
	Name        string `json:"name" yaml:"name"`
	Domain      string `json:"domain" yaml:"domain"`
	Color       string `json:"color" yaml:"color"`
	Description string `json:"description" yaml:"description"`
}

// GenericColor is used for external hosts that match no registry entry.
const GenericColor = "#5A5A5A"

// registry is ordered: the first entry whose domain is contained in a hostname wins.
var registry = []Source{
	{Key: "kaggle", Name: "Kaggle", Domain: "kaggle.com", Color: "#20BEFF", Description: "Kaggle Datasets"},
	{Key: "github", Name: "GitHub", Domain: "github.com", Color: "#181717", Description: "GitHub Repository"},
	{Key: "google-drive", Name: "Google Drive", Domain: "drive.google.com", Color: "#4285F4", Description: "Google Drive"},
	{Key: "dropbox", Name: "Dropbox", Domain: "dropbox.com", Color: "#0061FF", Description: "Dropbox"},
	{Key: "data-gov", Name: "Data.gov", Domain: "data.gov", Color: "#112E51", Description: "U.S. Government Open Data"},
	{Key: "uci", Name: "UCI ML Repository", Domain: "archive.ics.uci.edu", Color: "#003366", Description: "UCI Machine Learning Repository"},
	{Key: "zenodo", Name: "Zenodo", Domain: "zenodo.org", Color: "#1E88E5", Description: "Research Data Repository"},
	{Key: "figshare", Name: "figshare", Domain: "figshare.com", Color: "#999999", Description: "Research Repository"},
	{Key: "google-cloud", Name: "Google Cloud Storage", Domain: "storage.googleapis.com", Color: "#4285F4", Description: "Google Cloud Storage"},
	{Key: "aws", Name: "AWS S3", Domain: "s3.amazonaws.com", Color: "#FF9900", Description: "Amazon Web Services S3"},
	{Key: "onedrive", Name: "OneDrive", Domain: "onedrive.live.com", Color: "#0078D4", Description: "Microsoft OneDrive"},
}

// Registry returns a copy of the known providers in match order.
func Registry() []Source {
	out := make([]Source, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the registry entry with the given key.
func Lookup(key string) (Source, bool) {
	for _, s := range registry {
		if s.Key == key {
			return s, true
		}
	}
	return Source{}, false
}

func mustLookup(key string) Source {
	s, ok := Lookup(key)
	if !ok {
		panic("sources: registry entry missing: " + key)
	}
	return s
}
