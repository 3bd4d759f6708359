// Package analytics records page views through a process-wide sink that is
// installed once. Tracking before Init is a no-op.
package analytics

import (
	"io"
	"strings"
	"sync"

	"github.com/dataidea/dataidea-cli/internal/logging"
	"github.com/dataidea/dataidea-cli/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Analytics:", PrefixColor: ui.FgGreen, Field: "route"}

// SetLogger sets an optional destination for analytics logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

// Sink receives page views.
type Sink interface {
	PageView(route string)
}

var (
	once sync.Once
	mu   sync.RWMutex
	sink Sink
)

// Init installs s as the process-wide sink. Only the first call with a non-nil sink
// takes effect; it returns true for that call and false afterwards.
func Init(s Sink) bool {
	if s == nil {
		return false
	}
	installed := false
	once.Do(func() {
		mu.Lock()
		sink = s
		mu.Unlock()
		installed = true
	})
	if !installed {
		logger.Logf("", "already initialised; ignoring sink %T", s)
	}
	return installed
}

// Track records a page view for route.
func Track(route string) {
	mu.RLock()
	s := sink
	mu.RUnlock()
	if s == nil {
		return
	}
	route = strings.TrimSpace(route)
	if route == "" {
		route = "/"
	}
	logger.Logf(route, "page view")
	s.PageView(route)
}

// reset undoes Init. Tests only.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	sink = nil
	once = sync.Once{}
}
