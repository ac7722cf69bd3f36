package planfile

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doxa/internal/domain"
	"doxa/internal/plan"
)

func samplePlan() domain.Plan {
	played := time.Date(2023, 12, 10, 0, 0, 0, 0, time.UTC)
	return domain.Plan{
		Service: domain.ServiceInfo{Name: "Sunday Morning", Date: "2024-01-21"},
		Songs: []domain.Song{
			{ID: 1, Number: "101", Title: "Amazing Grace", Theme: "Hymn", LastPlayed: &played, TimesPlayedLastMonth: 2},
			{ID: 9, Title: "Doxology", Theme: "Hymn"},
		},
		Gifts: []domain.SpiritualGift{
			{ID: "g1", Type: domain.GiftDream, Content: "A river\nflowing east"},
		},
		Announcements: []domain.Announcement{
			{ID: "a1", Content: "Potluck after service"},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans", "plan.toml")
	want := samplePlan()

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, want.Service, got.Service)
	assert.Equal(t, want.Gifts, got.Gifts)
	assert.Equal(t, want.Announcements, got.Announcements)
	require.Len(t, got.Songs, 2)
	assert.Equal(t, "Amazing Grace", got.Songs[0].Title)
	require.NotNil(t, got.Songs[0].LastPlayed)
	assert.True(t, want.Songs[0].LastPlayed.Equal(*got.Songs[0].LastPlayed))
	assert.Equal(t, want.Songs[1], got.Songs[1])

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestEmptyPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")

	require.NoError(t, Save(path, domain.Plan{}))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, got.Songs)
	assert.NotNil(t, got.Songs)
	assert.NotNil(t, got.Gifts)
	assert.NotNil(t, got.Announcements)
}

func TestLoadRejectsUnknownGiftType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")
	doc := "version = 1\n\n[[gifts]]\nid = \"g1\"\ntype = \"prophecy\"\ncontent = \"x\"\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, plan.ErrInvalidGiftType)
	assert.ErrorContains(t, err, "prophecy")
}

func TestLoadRejectsNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 7\n"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "newer than supported")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConcurrentSaves(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.toml")
	want := samplePlan()

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- Save(path, want)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want.Service, got.Service)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}
