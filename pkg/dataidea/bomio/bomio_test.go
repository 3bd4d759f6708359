package bomio

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataidea/dataidea-cli/internal/catalog"
)

func TestBuildWriteRead(t *testing.T) {
	bom := Build([]catalog.Dataset{{ID: 1, Title: "Rainfall", Slug: "rainfall"}}, "")
	require.NotNil(t, bom.Components)

	path := filepath.Join(t.TempDir(), "out", "catalog.xml")
	require.NoError(t, WriteBOM(bom, path, "auto", "1.5"))

	got, err := ReadBOM(path, "auto")
	require.NoError(t, err)
	require.NotNil(t, got.Components)
	assert.Equal(t, "dataset:rainfall", (*got.Components)[0].BOMRef)
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Build(nil, "https://example.org"), "json", ""))
	assert.Contains(t, buf.String(), `"bomFormat": "CycloneDX"`)

	_, ok := ParseSpecVersion("2.0")
	assert.False(t, ok)
}
