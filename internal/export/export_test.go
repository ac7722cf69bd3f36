package export

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doxa/internal/domain"
)

func samplePlan() domain.Plan {
	return domain.Plan{
		Service: domain.ServiceInfo{Name: "Sunday Morning", Date: "2024-01-21"},
		Songs: []domain.Song{
			{ID: 1, Number: "101", Title: "Amazing Grace", Theme: "Hymn"},
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

func TestRowsKeepServiceOrder(t *testing.T) {
	rows := Rows(samplePlan())
	assert.Equal(t, []Row{
		{Title: "Amazing Grace", Number: "101", Theme: "Hymn"},
		{Title: "Doxology", Theme: "Hymn"},
	}, rows)

	assert.Empty(t, Rows(domain.Plan{}))
}

func TestMarkdown(t *testing.T) {
	want := "# Sunday Morning - 2024-01-21\n\n" +
		"## Songs\n\n" +
		"1. Amazing Grace (#101) - Hymn\n" +
		"2. Doxology - Hymn\n" +
		"\n## Spiritual Gifts\n\n" +
		"- **dream**: A river\n  flowing east\n" +
		"\n## Announcements\n\n" +
		"- Potluck after service\n"
	assert.Equal(t, want, Markdown(samplePlan()))
}

func TestMarkdownEmptyPlan(t *testing.T) {
	want := "# Church Service - Undated\n\n" +
		"## Songs\n\nNo songs selected\n" +
		"\n## Spiritual Gifts\n\nNo spiritual gifts recorded\n" +
		"\n## Announcements\n\nNo announcements recorded\n"
	assert.Equal(t, want, Markdown(domain.Plan{}))
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Amazing Grace", "Amazing Grace"},
		{"*bold*", `\*bold\*`},
		{"# not a heading", `\# not a heading`},
		{"3. not a list", `3\. not a list`},
		{"- not a bullet", `\- not a bullet`},
		{"10,000 Reasons", "10,000 Reasons"},
		{"<b>", `\<b>`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escape(tt.in), tt.in)
	}
}

func TestHTML(t *testing.T) {
	doc, err := HTML(samplePlan())
	require.NoError(t, err)

	assert.Contains(t, doc, "<title>Church Service Plan - 2024-01-21</title>")
	assert.Contains(t, doc, "<h1>Sunday Morning - 2024-01-21</h1>")
	assert.Contains(t, doc, "<h2>Songs</h2>")
	assert.Contains(t, doc, "<li>Amazing Grace (#101) - Hymn</li>")
	assert.Contains(t, doc, "<strong>dream</strong>: A river<br")
	assert.Contains(t, doc, "<li>Potluck after service</li>")
	assert.Contains(t, doc, "font-family: Arial")
}

func TestHTMLEscapesUserText(t *testing.T) {
	plan := domain.Plan{
		Announcements: []domain.Announcement{{ID: "a1", Content: "<script>alert(1)</script>"}},
	}
	doc, err := HTML(plan)
	require.NoError(t, err)
	assert.NotContains(t, doc, "<script>")
	assert.Contains(t, doc, "&lt;script")
	assert.Contains(t, doc, "<p>No songs selected</p>")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("Markdown")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, f)

	f, err = ParseFormat("html")
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, f)

	_, err = ParseFormat("pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "2024-01-21-sunday-morning.md",
		FileName(domain.ServiceInfo{Name: "Sunday Morning", Date: "2024-01-21"}, FormatMarkdown))
	assert.Equal(t, "undated-church-service.html",
		FileName(domain.ServiceInfo{}, FormatHTML))
	assert.Equal(t, "undated-easter-sunrise.md",
		FileName(domain.ServiceInfo{Name: "  Easter: Sunrise!! "}, FormatMarkdown))
	assert.Equal(t, "undated-cafe-worship.md",
		FileName(domain.ServiceInfo{Name: "Café Worship"}, FormatMarkdown))
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	path, err := WriteFile(context.Background(), samplePlan(), dir, FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2024-01-21-sunday-morning.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Markdown(samplePlan()), string(data))
}

func TestWriteFileCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WriteFile(ctx, samplePlan(), t.TempDir(), FormatHTML)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentWriteFile(t *testing.T) {
	dir := t.TempDir()
	want, err := Render(samplePlan(), FormatHTML)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := WriteFile(context.Background(), samplePlan(), dir, FormatHTML)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
}
