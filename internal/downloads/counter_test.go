package downloads

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type incrementerFunc func(ctx context.Context, slug string) (int, error)

func (f incrementerFunc) IncrementDownload(ctx context.Context, slug string) (int, error) {
	return f(ctx, slug)
}

func TestCounter_RecordReplacesWithServerValue(t *testing.T) {
	var gotSlug string
	c := NewCounter(41, incrementerFunc(func(_ context.Context, slug string) (int, error) {
		gotSlug = slug
		return 100, nil
	}))

	n, ok := c.Record(context.Background(), "rainfall")
	assert.True(t, ok)
	assert.Equal(t, 100, n)
	assert.Equal(t, 100, c.Displayed, "server value wins even when it is not Displayed+1")
	assert.Equal(t, "rainfall", gotSlug)
}

func TestCounter_RecordFailureKeepsDisplayed(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(&buf)
	t.Cleanup(func() { SetLogger(nil) })

	c := NewCounter(7, incrementerFunc(func(context.Context, string) (int, error) {
		return 0, errors.New("connection refused")
	}))

	n, ok := c.Record(context.Background(), "rainfall")
	assert.False(t, ok)
	assert.Equal(t, 7, n)
	assert.Equal(t, 7, c.Displayed)
	assert.True(t, strings.Contains(buf.String(), "connection refused"), buf.String())
}

func TestCounter_RecordWithoutIncrementer(t *testing.T) {
	c := &Counter{Displayed: 3}
	n, ok := c.Record(context.Background(), "x")
	assert.False(t, ok)
	assert.Equal(t, 3, n)
}

func TestCounter_SequentialRecords(t *testing.T) {
	server := 10
	c := NewCounter(server, incrementerFunc(func(context.Context, string) (int, error) {
		server++
		return server, nil
	}))
	for i := 0; i < 3; i++ {
		c.Record(context.Background(), "x")
	}
	assert.Equal(t, 13, c.Displayed)
}
