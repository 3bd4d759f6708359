package sources

import "testing"

func TestIsExternalLink(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{name: "empty", url: "", want: false},
		{name: "relative path", url: "/media/datasets/iris.csv", want: false},
		{name: "free text", url: "not a url", want: false},
		{name: "scheme without host", url: "https://", want: false},
		{name: "own domain", url: "https://dataidea.org/media/iris.csv", want: false},
		{name: "own subdomain", url: "https://api.dataidea.org/media/iris.csv", want: false},
		{name: "loopback", url: "http://localhost:8000/media/iris.csv", want: false},
		{name: "loopback upper case", url: "http://LOCALHOST/media/iris.csv", want: false},
		{name: "kaggle", url: "https://www.kaggle.com/datasets/x", want: true},
		{name: "unknown host", url: "https://example.org/data.csv", want: true},
		{name: "host with port", url: "https://files.example.org:8443/data.csv", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsExternalLink(tt.url); got != tt.want {
				t.Fatalf("IsExternalLink(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantNil    bool
		wantKey    string
		wantName   string
		wantDomain string
	}{
		{name: "empty", url: "", wantNil: true},
		{name: "not a url", url: "not a url", wantNil: true},
		{name: "kaggle subdomain", url: "https://www.kaggle.com/datasets/x", wantKey: "kaggle"},
		{name: "github", url: "https://github.com/org/repo/raw/main/data.csv", wantKey: "github"},
		{name: "drive", url: "https://drive.google.com/file/d/abc", wantKey: "google-drive"},
		{name: "case insensitive", url: "https://ZENODO.ORG/record/1", wantKey: "zenodo"},
		{name: "bucket subdomain", url: "https://my-bucket.s3.amazonaws.com/f.csv", wantKey: "aws"},
		{name: "regional s3 fallback", url: "https://bucket.s3.eu-west-1.amazonaws.com/f.csv", wantKey: "aws"},
		{name: "s3 token fallback", url: "https://s3-mirror.example.com/f.csv", wantKey: "aws"},
		{name: "googleapis fallback", url: "https://bigquery.googleapis.com/x", wantKey: "google-cloud"},
		{name: "gcs token fallback", url: "https://gcs.example.net/x", wantKey: "google-cloud"},
		{name: "registry order wins over fallback", url: "https://data.gov.s3.amazonaws.com/x", wantKey: "data-gov"},
		{
			name:       "generic external",
			url:        "https://files.example.org/data.csv",
			wantName:   "External Source",
			wantDomain: "files.example.org",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.url)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("Detect(%q) = %#v, want nil", tt.url, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Detect(%q) = nil", tt.url)
			}
			if tt.wantKey != "" {
				want, _ := Lookup(tt.wantKey)
				if *got != want {
					t.Fatalf("Detect(%q) = %#v, want %#v", tt.url, *got, want)
				}
				return
			}
			if got.Name != tt.wantName || got.Domain != tt.wantDomain || got.Color != GenericColor {
				t.Fatalf("Detect(%q) = %#v", tt.url, *got)
			}
		})
	}
}

func TestDetect_DoesNotShareRegistryEntries(t *testing.T) {
	s := Detect("https://www.kaggle.com/x")
	s.Name = "changed"
	if again := Detect("https://www.kaggle.com/x"); again.Name != "Kaggle" {
		t.Fatalf("registry entry was mutated through returned pointer: %q", again.Name)
	}
}

func TestRegistry_ReturnsCopyInOrder(t *testing.T) {
	r := Registry()
	if len(r) != 11 {
		t.Fatalf("len(Registry()) = %d, want 11", len(r))
	}
	if r[0].Key != "kaggle" || r[len(r)-1].Key != "onedrive" {
		t.Fatalf("unexpected order: first=%s last=%s", r[0].Key, r[len(r)-1].Key)
	}
	r[0].Domain = "mutated"
	if Registry()[0].Domain != "kaggle.com" {
		t.Fatalf("Registry() exposed internal slice")
	}
}

func TestDisplayNameAndDomain(t *testing.T) {
	if got := DisplayName("https://github.com/x"); got != "GitHub" {
		t.Errorf("DisplayName = %q", got)
	}
	if got := DisplayName("::"); got != "Unknown Source" {
		t.Errorf("DisplayName(bad) = %q", got)
	}
	if got := DomainFromURL("https://files.example.org:8443/a"); got != "files.example.org" {
		t.Errorf("DomainFromURL = %q", got)
	}
	if got := DomainFromURL("not a url"); got != "Unknown" {
		t.Errorf("DomainFromURL(bad) = %q", got)
	}
	if !IsValidURL("https://example.org") || IsValidURL("example.org/path") {
		t.Errorf("IsValidURL mismatch")
	}
}
