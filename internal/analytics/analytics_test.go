package analytics

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	routes []string
}

func (r *recordingSink) PageView(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

func TestTrack_BeforeInitIsNoop(t *testing.T) {
	reset()
	t.Cleanup(reset)

	assert.NotPanics(t, func() { Track("/datasets") })
}

func TestInit_OnlyFirstSinkWins(t *testing.T) {
	reset()
	t.Cleanup(reset)

	first := &recordingSink{}
	second := &recordingSink{}

	assert.False(t, Init(nil))
	assert.True(t, Init(first))
	assert.False(t, Init(second))

	Track("/datasets")
	Track(" ")

	assert.Equal(t, []string{"/datasets", "/"}, first.routes)
	assert.Empty(t, second.routes)
}

func TestInit_Concurrent(t *testing.T) {
	reset()
	t.Cleanup(reset)

	var wg sync.WaitGroup
	wins := make(chan bool, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- Init(&recordingSink{})
		}()
	}
	wg.Wait()
	close(wins)

	n := 0
	for w := range wins {
		if w {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

func TestPrometheusSink_CountsAndWrites(t *testing.T) {
	p := NewPrometheusSink()
	p.PageView("/")
	p.PageView("/datasets")
	p.PageView("/datasets")

	assert.Equal(t, float64(2), testutil.ToFloat64(p.pageViews.WithLabelValues("/datasets")))
	assert.Equal(t, 2, testutil.CollectAndCount(p.pageViews, "dataidea_page_views_total"))

	path := filepath.Join(t.TempDir(), "views.prom")
	require.NoError(t, p.WriteTextfile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)
	assert.True(t, strings.Contains(out, `dataidea_page_views_total{route="/datasets"} 2`), out)
	assert.True(t, strings.Contains(out, `dataidea_page_views_total{route="/"} 1`), out)
}
