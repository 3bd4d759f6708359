package browse

import (
	"io"

	"github.com/dataidea/dataidea-cli/internal/logging"
	"github.com/dataidea/dataidea-cli/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Browse:", PrefixColor: ui.FgCyan}

// SetLogger sets an optional destination for session logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(slug string, format string, args ...any) {
	logger.Logf(slug, format, args...)
}
