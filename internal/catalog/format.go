package catalog

import (
	"fmt"
	"strings"
	"time"
)

// FormatFileSize renders a size given in kilobytes. Missing or zero sizes are unknown.
func FormatFileSize(kb *int64) string {
	if kb == nil || *kb == 0 {
		return "Unknown size"
	}
	if *kb < 1024 {
		return fmt.Sprintf("%d KB", *kb)
	}
	return fmt.Sprintf("%.2f MB", float64(*kb)/1024)
}

// FileTypeColor picks the badge colour for a file type label.
func FileTypeColor(fileType string) string {
	ft := strings.ToLower(fileType)
	switch {
	case strings.Contains(ft, "csv"):
		return "#4caf50"
	case strings.Contains(ft, "json"):
		return "#ff9800"
	case strings.Contains(ft, "xls"):
		return "#2196f3"
	case strings.Contains(ft, "txt"):
		return "#9e9e9e"
	case strings.Contains(ft, "zip"):
		return "#673ab7"
	default:
		return "#f44336"
	}
}

// LevelColor picks the badge colour for a course level. Unknown levels get the default.
func LevelColor(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "beginner":
		return "#4caf50"
	case "intermediate":
		return "#ff9800"
	case "advanced":
		return "#f44336"
	default:
		return "#2196f3"
	}
}

// FormatDate renders t as e.g. "March 4, 2024". The zero time renders empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}
