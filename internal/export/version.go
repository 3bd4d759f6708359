package export

import "runtime/debug"

var (
	// Set at build time with -ldflags "-X 'github.com/dataidea/dataidea-cli/internal/export.BuildVersion=...'".
	BuildVersion = ""
	Commit       = ""
)

var readBuildInfo = debug.ReadBuildInfo

// Version reports the CLI version: ldflags first, then module build info, then the commit.
func Version() string {
	if BuildVersion != "" && BuildVersion != "dev" {
		return BuildVersion
	}
	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	if Commit != "" {
		return "commit-" + Commit
	}
	return "devel"
}
