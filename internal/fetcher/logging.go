package fetcher

import (
	"io"

	"github.com/dataidea/dataidea-cli/internal/logging"
	"github.com/dataidea/dataidea-cli/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Fetch:", PrefixColor: ui.FgMagenta}

// SetLogger sets an optional destination for fetch logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(slug string, format string, args ...any) {
	logger.Logf(slug, format, args...)
}
