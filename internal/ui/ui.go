package ui

// Basic ANSI color codes, used by the logging package prefixes.
const (
	Reset      = "\033[0m"
	LegacyBold = "\033[1m"
	FgCyan     = "\033[36m"
	FgGreen    = "\033[32m"
	FgMagenta  = "\033[35m"
	FgYellow   = "\033[33m"
	FgRed      = "\033[31m"
)

var plain bool

// Init configures global rendering. With noColor set, Color and every style render
// their input unchanged.
func Init(noColor bool) { plain = noColor }

// Plain reports whether styling is disabled.
func Plain() bool { return plain }

// Color wraps a string with the given ANSI code.
func Color(s string, code string) string {
	if plain {
		return s
	}
	return code + s + Reset
}
