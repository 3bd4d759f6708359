package browse

import "sync/atomic"

// Generations stamps asynchronous requests so only the response to the most
// recent dispatch is applied. The zero value is ready to use.
type Generations struct {
	n atomic.Uint64
}

// Next starts a new request and returns its stamp. Every earlier stamp becomes stale.
func (g *Generations) Next() uint64 { return g.n.Add(1) }

// Current reports whether gen is still the latest dispatched request.
func (g *Generations) Current(gen uint64) bool { return g.n.Load() == gen }
