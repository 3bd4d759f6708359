package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataidea/dataidea-cli/internal/apperr"
)

const catalogJSON = `[
  {"id": 1, "title": "Rainfall", "slug": "rainfall", "description": "Daily rainfall",
   "categories": [{"id": 3, "name": "Climate", "slug": "climate"}], "tags": "weather",
   "source_url": "https://www.kaggle.com/datasets/rain", "download_count": 7,
   "created_at": "2024-01-01T00:00:00Z", "updated_at": "2024-01-01T00:00:00Z"},
  {"id": 2, "title": "Agriculture", "slug": "agriculture", "description": "Crop yields",
   "categories": [{"id": 3, "name": "Climate", "slug": "climate"}], "tags": "weather",
   "file": "/media/agri.csv", "download_count": 30,
   "created_at": "2023-01-01T00:00:00Z", "updated_at": "2023-01-01T00:00:00Z"}
]`

func catalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/datasets/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/datasets/":
			_, _ = w.Write([]byte(catalogJSON))
		case "/api/datasets/agriculture/":
			_, _ = w.Write([]byte(`{"id": 2, "slug": "agriculture", "title": "Agriculture", "file": "/media/agri.csv",
				"source_url": "https://www.kaggle.com/datasets/agri", "download_count": 30}`))
		case "/api/datasets/rainfall/":
			_, _ = w.Write([]byte(`{"id": 1, "slug": "rainfall", "title": "Rainfall",
				"file": "https://www.kaggle.com/datasets/rain/download", "source_url": "", "download_count": 7}`))
		case "/api/datasets/agriculture/download/":
			_, _ = w.Write([]byte(`{"download_count": 31}`))
		default:
			http.NotFound(w, r)
		}
	})
	mux.HandleFunc("/api/categories/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 3, "name": "Climate", "slug": "climate"}]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDatasets_JSONPage(t *testing.T) {
	srv := catalogServer(t)
	out, err := run(t, "datasets", "--api-url", srv.URL+"/api", "-o", "json",
		"--sort", "a-z", "--page", "1", "--page-size", "1")
	require.NoError(t, err)

	var page datasetsPage
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, 2, page.TotalMatched)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Datasets, 1)
	assert.Equal(t, "agriculture", page.Datasets[0].Slug)
}

func TestDatasets_RejectsBadSort(t *testing.T) {
	srv := catalogServer(t)
	_, err := run(t, "datasets", "--api-url", srv.URL+"/api", "-o", "json", "--sort", "random", "--page", "1")
	require.Error(t, err)
	assert.True(t, apperr.IsUser(err))

	_, err = run(t, "datasets", "--api-url", srv.URL+"/api", "-o", "json", "--sort", "newest", "--page", "0")
	require.Error(t, err)
	assert.True(t, apperr.IsUser(err))
}

func TestShow_NotFoundIsNotAnError(t *testing.T) {
	srv := catalogServer(t)
	out, err := run(t, "show", "missing", "--api-url", srv.URL+"/api", "-o", "json")
	require.NoError(t, err)

	var rec detailRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.True(t, rec.NotFound)
	assert.Nil(t, rec.Dataset)
}

func TestDownload_InternalFile(t *testing.T) {
	srv := catalogServer(t)
	out, err := run(t, "download", "agriculture", "--api-url", srv.URL+"/api", "-o", "json", "--yes=false")
	require.NoError(t, err)

	var rec downloadRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.False(t, rec.External)
	assert.Equal(t, "/media/agri.csv", rec.URL)
	assert.True(t, rec.Registered)
	assert.Equal(t, 31, rec.DownloadCount)
}

func TestDownload_ExternalFileNeedsYes(t *testing.T) {
	srv := catalogServer(t)
	_, err := run(t, "download", "rainfall", "--api-url", srv.URL+"/api", "-o", "json", "--yes=false")
	require.Error(t, err)
	assert.True(t, apperr.IsUser(err))
}

func TestSource_JSON(t *testing.T) {
	out, err := run(t, "source", "https://github.com/org/repo", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "GitHub"`)
	assert.Contains(t, out, `"external": true`)

	_, err = run(t, "source", "/media/file.csv", "-o", "json")
	require.Error(t, err)
	assert.True(t, apperr.IsUser(err))
}

func TestAnalyticsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "views.prom")
	t.Cleanup(func() { rootCmd.PersistentFlags().Set("analytics-file", "") })

	_, err := run(t, "source", "https://github.com/org/repo", "-o", "json", "--analytics-file", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dataidea_page_views_total")
}
