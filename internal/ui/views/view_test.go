package views

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doxa/internal/domain"
	"doxa/internal/ui/input/types"
)

func baseState() ViewState {
	played := time.Date(2023, 12, 10, 0, 0, 0, 0, time.UTC)
	return ViewState{
		Width:       100,
		Height:      30,
		Focus:       types.PaneLibrary,
		CatalogSize: 8,
		DragIndex:   -1,
		Songs: []domain.Song{
			{ID: 1, Number: "101", Title: "Amazing Grace", Theme: "Hymn", LastPlayed: &played, TimesPlayedLastMonth: 2},
			{ID: 4, Number: "201", Title: "Holy Spirit", Theme: "Contemporary"},
		},
		Gifts:         []domain.SpiritualGift{{ID: "g1", Type: domain.GiftDream, Content: "A river\nflowing"}},
		Announcements: []domain.Announcement{{ID: "a1", Content: "Potluck"}},
		Cursors:       map[types.Pane]int{},
		Offsets:       map[types.Pane]int{},
	}
}

func TestRenderFillsScreen(t *testing.T) {
	out := NewRenderer().Render(baseState())
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 30)
}

func TestRenderPlanPanes(t *testing.T) {
	out := NewRenderer().Render(baseState())

	assert.Contains(t, out, "Songs (2)")
	assert.Contains(t, out, "1. Amazing Grace (#101)")
	assert.Contains(t, out, "2. Holy Spirit (#201)")
	assert.Contains(t, out, "last played 2023-12-10")
	assert.Contains(t, out, "never played")
	assert.Contains(t, out, "[dream]")
	assert.Contains(t, out, "A river …")
	assert.Contains(t, out, "Potluck")
	assert.Contains(t, out, "Church Service")
	assert.Contains(t, out, "undated")
}

func TestRenderSongsStartAtLayoutRow(t *testing.T) {
	state := baseState()
	out := NewRenderer().Render(state)
	lines := strings.Split(out, "\n")

	l := Layout{Width: state.Width, Height: state.Height}
	assert.Contains(t, lines[l.SongsTop()], "Amazing Grace")
	assert.Contains(t, lines[l.SongsTop()+2], "Holy Spirit")
}

func TestRenderEmptyStates(t *testing.T) {
	state := baseState()
	state.Songs = nil
	state.Gifts = nil
	state.Announcements = nil
	out := NewRenderer().Render(state)

	assert.Contains(t, out, "No songs selected")
	assert.Contains(t, out, "No spiritual gifts recorded")
	assert.Contains(t, out, "No announcements recorded")
	assert.Contains(t, out, "Type / to search the library")

	state.Query = "xyz"
	assert.Contains(t, NewRenderer().Render(state), `No songs match "xyz"`)

	state.Query = ""
	state.CatalogSize = 0
	state.Loading = true
	assert.Contains(t, NewRenderer().Render(state), "Loading catalog…")
}

func TestRenderResultsHighlightQuery(t *testing.T) {
	state := baseState()
	state.Query = "grace"
	state.Results = []domain.Song{{ID: 1, Title: "Amazing Grace", Theme: "Hymn"}}
	state.Songs = nil

	out := NewRenderer().Render(state)
	assert.Contains(t, out, "Library (1)")
	assert.Contains(t, out, "Grace")
}

func TestRenderFooter(t *testing.T) {
	state := baseState()
	state.Dirty = true
	state.StatusMessage = "Saved plan.toml"
	state.Prompt = "Search: "
	state.TextInput = "gra"

	out := NewRenderer().Render(state)
	assert.Contains(t, out, "● unsaved")
	assert.Contains(t, out, "Saved plan.toml")
	assert.Contains(t, out, "Search: gra")
	assert.Contains(t, out, "Press ? for help")
}

func TestRenderPopups(t *testing.T) {
	state := baseState()
	state.ShowHelp = true
	state.HelpContent = "doxa help\nline"
	assert.Contains(t, NewRenderer().Render(state), "doxa help")

	state = baseState()
	state.ShowPreview = true
	state.PreviewContent = "# Church Service - Undated"
	out := NewRenderer().Render(state)
	assert.Contains(t, out, "# Church Service - Undated")
	assert.NotContains(t, out, "Songs (2)")
}

func TestScrollWindow(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}
	marker := lipgloss.NewStyle()

	assert.Equal(t, lines, scrollWindow(lines, 0, 10, marker))

	w := scrollWindow(lines, 1, 3, marker)
	require.Len(t, w, 3)
	assert.Equal(t, "↑ (more above)", w[0])
	assert.Equal(t, "c", w[1])
	assert.Equal(t, "↓ (more below)", w[2])

	w = scrollWindow(lines, 99, 3, marker)
	assert.Equal(t, []string{"↑ (more above)", "d", "e"}, w)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Amazing Grace", truncate("Amazing Grace", 20))
	assert.Equal(t, "Amaz…", truncate("Amazing Grace", 5))
	assert.Equal(t, "", truncate("Amazing Grace", 0))
	assert.Equal(t, "讃美…", truncate("讃美歌集", 5), "wide runes count two cells")
}

func TestPadRightCountsCells(t *testing.T) {
	assert.Equal(t, "讃美  ", padRight("讃美", 6))
	assert.Equal(t, "Grace", padRight("Grace", 3))
}

func TestHighlightMatch(t *testing.T) {
	style := lipgloss.NewStyle().Transform(func(s string) string { return "[" + s + "]" })
	assert.Equal(t, "Amazing Grace", highlightMatch("Amazing Grace", "", style))
	assert.Equal(t, "Amazing [Grace]", highlightMatch("Amazing Grace", "GRACE", style))
	assert.Equal(t, "Amazing Grace", highlightMatch("Amazing Grace", "xyz", style))
	assert.Equal(t, "[Straße] des Glaubens", highlightMatch("Straße des Glaubens", "STRASSE", style))
}
