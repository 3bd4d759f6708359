// Package downloads mirrors the server-side download counter for one dataset.
package downloads

import (
	"context"
	"io"

	"github.com/dataidea/dataidea-cli/internal/logging"
	"github.com/dataidea/dataidea-cli/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Download:", PrefixColor: ui.FgYellow}

// SetLogger sets an optional destination for download counter logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

// Incrementer registers a download and returns the authoritative counter value.
type Incrementer interface {
	IncrementDownload(ctx context.Context, slug string) (int, error)
}

// Counter holds the displayed download count. The server is the only source of
// truth: Displayed is never incremented locally.
type Counter struct {
	Displayed int

	inc Incrementer
}

// NewCounter starts a counter at the dataset's current count.
func NewCounter(current int, inc Incrementer) *Counter {
	return &Counter{Displayed: current, inc: inc}
}

// Record asks the server to increment the counter for slug. On success Displayed
// becomes exactly the returned value. On failure the error is logged, Displayed
// is left untouched and ok is false.
func (c *Counter) Record(ctx context.Context, slug string) (count int, ok bool) {
	if c.inc == nil {
		logger.Logf(slug, "no incrementer configured")
		return c.Displayed, false
	}
	n, err := c.inc.IncrementDownload(ctx, slug)
	if err != nil {
		logger.Logf(slug, "increment failed (%v); keeping %d", err, c.Displayed)
		return c.Displayed, false
	}
	logger.Logf(slug, "count %d -> %d", c.Displayed, n)
	c.Displayed = n
	return n, true
}
