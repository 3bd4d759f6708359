package export

import (
	"io"

	"github.com/dataidea/dataidea-cli/internal/logging"
	"github.com/dataidea/dataidea-cli/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Export:", PrefixColor: ui.FgGreen}

// SetLogger sets an optional destination for export logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(slug string, format string, args ...any) {
	logger.Logf(slug, format, args...)
}
