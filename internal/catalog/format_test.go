package catalog

import (
	"testing"
	"time"
)

func ptr(v int64) *int64 { return &v }

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		in   *int64
		want string
	}{
		{nil, "Unknown size"},
		{ptr(0), "Unknown size"},
		{ptr(512), "512 KB"},
		{ptr(1023), "1023 KB"},
		{ptr(1024), "1.00 MB"},
		{ptr(2560), "2.50 MB"},
	}
	for _, tt := range tests {
		if got := FormatFileSize(tt.in); got != tt.want {
			t.Errorf("FormatFileSize(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFileTypeColor(t *testing.T) {
	tests := map[string]string{
		"CSV":  "#4caf50",
		"json": "#ff9800",
		"xlsx": "#2196f3",
		"TXT":  "#9e9e9e",
		"zip":  "#673ab7",
		"":     "#f44336",
		"parq": "#f44336",
	}
	for in, want := range tests {
		if got := FileTypeColor(in); got != want {
			t.Errorf("FileTypeColor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLevelColor_UnknownFallsBack(t *testing.T) {
	if got := LevelColor("Beginner"); got != "#4caf50" {
		t.Errorf("beginner = %q", got)
	}
	if got := LevelColor("expert"); got != "#2196f3" {
		t.Errorf("unknown level = %q", got)
	}
	if got := LevelColor(""); got != "#2196f3" {
		t.Errorf("empty level = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)); got != "March 4, 2024" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("FormatDate(zero) = %q", got)
	}
}
