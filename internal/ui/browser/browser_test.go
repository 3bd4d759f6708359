package browser

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dataidea/dataidea-cli/internal/browse"
	"github.com/dataidea/dataidea-cli/internal/browse/mocks"
	"github.com/dataidea/dataidea-cli/internal/catalog"
	"github.com/dataidea/dataidea-cli/internal/ui"
)

func init() { ui.Init(true) }

func fixtures(n int) ([]catalog.Dataset, []catalog.Category) {
	climate := catalog.Category{ID: 1, Name: "Climate", Slug: "climate"}
	health := catalog.Category{ID: 2, Name: "Health", Slug: "health"}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ds := make([]catalog.Dataset, n)
	for i := range ds {
		cat := climate
		if i%2 == 1 {
			cat = health
		}
		ds[i] = catalog.Dataset{
			ID:         i + 1,
			Slug:       fmt.Sprintf("ds-%02d", i+1),
			Title:      fmt.Sprintf("Dataset %02d", i+1),
			Categories: []catalog.Category{cat},
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		}
	}
	return ds, []catalog.Category{climate, health}
}

func loadedModel(t *testing.T, n int) (*Model, *mocks.MockCatalog) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockCatalog(ctrl)
	ds, cats := fixtures(n)
	api.EXPECT().Datasets(gomock.Any()).Return(ds, nil)
	api.EXPECT().Categories(gomock.Any()).Return(cats, nil)

	m := New(context.Background(), browse.NewSession(api, 0))
	cmd := m.Init()
	require.NotNil(t, cmd)
	m.Update(cmd())
	return m, api
}

func key(r rune) tea.KeyMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func TestBrowser_LoadFillsFirstPage(t *testing.T) {
	m, _ := loadedModel(t, 25)

	assert.False(t, m.loading)
	assert.Equal(t, 25, m.result.TotalMatched)
	assert.Equal(t, 3, m.result.TotalPages)
	assert.Len(t, m.list.Items(), 9)
	assert.Contains(t, m.render(), "Page 1 of 3")
}

func TestBrowser_Paging(t *testing.T) {
	m, _ := loadedModel(t, 25)

	m.Update(key('n'))
	m.Update(key('n'))
	assert.Equal(t, 3, m.session.Params().Page)
	assert.Len(t, m.list.Items(), 7)

	m.Update(key('n'))
	assert.Equal(t, 3, m.session.Params().Page, "cannot page past the end")

	m.Update(key('p'))
	assert.Equal(t, 2, m.session.Params().Page)
}

func TestBrowser_CategoryResetsPage(t *testing.T) {
	m, _ := loadedModel(t, 25)
	m.Update(key('n'))
	m.Update(key('n'))

	m.Update(key('c'))

	assert.Equal(t, 1, m.session.Params().Page)
	assert.Equal(t, "climate", m.session.Params().Category)
	assert.Equal(t, 13, m.result.TotalMatched)
}

func TestBrowser_SortCycles(t *testing.T) {
	m, _ := loadedModel(t, 3)

	m.Update(key('s'))
	assert.Equal(t, catalog.SortOldest, m.session.Params().Sort)
	assert.Equal(t, "ds-01", m.result.Page[0].Slug)
}

func TestBrowser_LoadFailureShowsMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockCatalog(ctrl)
	api.EXPECT().Datasets(gomock.Any()).Return(nil, fmt.Errorf("down")).AnyTimes()
	api.EXPECT().Categories(gomock.Any()).Return(nil, nil).AnyTimes()

	m := New(context.Background(), browse.NewSession(api, 0))
	m.Update(m.Init()())

	assert.Equal(t, browse.LoadErrorMessage, m.loadErr)
	assert.True(t, strings.Contains(m.render(), browse.LoadErrorMessage))
}

func TestBrowser_StaleLoadIgnored(t *testing.T) {
	m, _ := loadedModel(t, 5)
	m.loads.Next()

	m.Update(loadedMsg{gen: 1, err: fmt.Errorf("late failure")})

	assert.Empty(t, m.loadErr)
}

func TestBrowser_StaleDetailIgnored(t *testing.T) {
	m, _ := loadedModel(t, 5)
	m.detailLoading = true

	m.Update(detailMsg{err: browse.ErrStale})

	assert.Equal(t, modeList, m.mode)
	assert.True(t, m.detailLoading)
}

func TestBrowser_ExternalDownloadNeedsConfirmation(t *testing.T) {
	m, api := loadedModel(t, 5)
	d := m.result.Page[0]
	d.File = "https://www.kaggle.com/datasets/x/download"
	m.Update(detailMsg{view: &browse.DetailView{Dataset: &d, External: true}})
	require.Equal(t, modeDetail, m.mode)

	_, cmd := m.Update(key('d'))
	assert.Nil(t, cmd)
	assert.Equal(t, modeConfirm, m.mode)

	m.Update(key('n'))
	assert.Equal(t, modeDetail, m.mode)
	assert.Equal(t, "Download cancelled", m.status)

	m.Update(key('d'))
	api.EXPECT().IncrementDownload(gomock.Any(), d.Slug).Return(77, nil)
	_, cmd = m.Update(key('y'))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, 77, m.detail.Dataset.DownloadCount)
	assert.Contains(t, m.status, "77")
}

func TestBrowser_FailedDownloadKeepsDisplayedCount(t *testing.T) {
	m, api := loadedModel(t, 5)
	d := m.result.Page[0]
	d.DownloadCount = 10
	m.Update(detailMsg{view: &browse.DetailView{Dataset: &d}})
	require.Equal(t, modeDetail, m.mode)

	api.EXPECT().IncrementDownload(gomock.Any(), d.Slug).Return(0, fmt.Errorf("offline"))
	_, cmd := m.Update(key('d'))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, 10, m.detail.Dataset.DownloadCount)
	assert.Equal(t, "Could not register the download", m.status)
}

func TestBrowser_ReloadWhileBrowsing(t *testing.T) {
	m, api := loadedModel(t, 25)
	ds, cats := fixtures(25)
	api.EXPECT().Datasets(gomock.Any()).Return(ds, nil)
	api.EXPECT().Categories(gomock.Any()).Return(cats, nil)

	cmd := m.load()
	done := make(chan tea.Msg)
	go func() { done <- cmd() }()

	for i := 0; i < 50; i++ {
		m.session.SetPage(2)
		_ = m.session.Params()
	}
	m.Update(<-done)

	assert.False(t, m.loading)
	assert.Equal(t, 25, m.result.TotalMatched)
}
