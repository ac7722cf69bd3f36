package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"doxa/internal/domain"
	"doxa/internal/ui/input/types"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Focus         types.Pane
	Service       domain.ServiceInfo
	Query         string
	Searching     bool
	MatchAll      bool
	Results       []domain.Song
	Songs         []domain.Song
	Gifts         []domain.SpiritualGift
	Announcements []domain.Announcement
	Cursors       map[types.Pane]int
	Offsets       map[types.Pane]int
	DragIndex     int // -1 when no song is being dragged

	Loading     bool
	CatalogSize int
	Dirty       bool

	StatusMessage string
	StatusIsError bool
	Prompt        string
	TextInput     string
	Confirming    bool
	KeyHelp       string

	ShowHelp         bool
	HelpContent      string
	HelpScrollOffset int

	ShowPreview         bool
	PreviewContent      string
	PreviewScrollOffset int
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	songRender *SongRenderer
	paneRender *PaneRenderer
	popup      *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		songRender: NewSongRenderer(styles),
		paneRender: NewPaneRenderer(styles),
		popup:      NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Width <= 0 {
		state.Width = 80
	}
	if state.Height <= 0 {
		state.Height = 24
	}

	if state.ShowHelp && state.HelpContent != "" {
		return r.popup.RenderPopup(state.HelpContent, state.HelpScrollOffset, state.Height, state.Width, r.styles.InfoBox)
	}
	if state.ShowPreview && state.PreviewContent != "" {
		return r.popup.RenderPopup(state.PreviewContent, state.PreviewScrollOffset, state.Height, state.Width, r.styles.PreviewBox)
	}

	layout := Layout{Width: state.Width, Height: state.Height}
	lines := make([]string, 0, state.Height)
	lines = append(lines, r.renderHeader(state), "")

	left := r.renderLibrary(state, layout)
	right := r.renderPlan(state, layout)
	body := layout.bodyLines()
	for i := 0; i < body; i++ {
		var l, rt string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			rt = right[i]
		}
		lines = append(lines, padRight(l, layout.LeftWidth())+rt)
	}

	lines = append(lines, r.renderFooter(state)...)
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderHeader(state ViewState) string {
	logo := r.styles.Title.Render("doxa")

	name := state.Service.Name
	if name == "" {
		name = "Church Service"
	}
	date := state.Service.Date
	if date == "" {
		date = "undated"
	}
	left := fmt.Sprintf("%s  %s %s", logo, r.styles.Service.Render(name), r.styles.Dim.Render("· "+date))

	indicators := []string{}
	if state.Loading {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		indicators = append(indicators, r.styles.StatusLoading.Render(spinner[frame]+" Loading"))
	}
	if state.Dirty {
		indicators = append(indicators, r.styles.Unsaved.Render("● unsaved"))
	}
	if len(indicators) == 0 {
		return left
	}

	right := strings.Join(indicators, "  ")
	padding := state.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return left + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderLibrary(state ViewState, layout Layout) []string {
	focused := state.Focus == types.PaneLibrary
	width := layout.LeftWidth() - 1

	suffix := ""
	if state.Query != "" {
		suffix = r.styles.Dim.Render("/" + state.Query)
	}
	lines := []string{r.paneRender.RenderTitle(types.PaneLibrary.String(), len(state.Results), focused, suffix)}

	if len(state.Results) == 0 {
		lines = append(lines, r.paneRender.RenderEmpty(r.libraryEmptyText(state)))
		return lines
	}

	offset := state.Offsets[types.PaneLibrary]
	cursor := state.Cursors[types.PaneLibrary]
	for i := offset; i < len(state.Results) && i < offset+layout.LibraryRows(); i++ {
		lines = append(lines, r.songRender.RenderSong(state.Results[i], SongRow{
			Cursor:  i == cursor,
			Focused: focused,
			Query:   state.Query,
			Width:   width,
		})...)
	}
	return lines
}

func (r *Renderer) libraryEmptyText(state ViewState) string {
	switch {
	case state.Loading && state.CatalogSize == 0:
		return "Loading catalog…"
	case state.CatalogSize == 0:
		return "The song catalog is empty"
	case strings.TrimSpace(state.Query) == "" && !state.MatchAll:
		return "Type / to search the library"
	case strings.TrimSpace(state.Query) == "":
		return "Every song is already planned"
	}
	return fmt.Sprintf("No songs match %q", state.Query)
}

func (r *Renderer) renderPlan(state ViewState, layout Layout) []string {
	width := layout.RightWidth()
	lines := make([]string, 0, layout.bodyLines())

	// Songs keep a fixed number of lines so mouse hit testing stays aligned
	focused := state.Focus == types.PaneSongs
	lines = append(lines, r.paneRender.RenderTitle(types.PaneSongs.String(), len(state.Songs), focused, ""))
	songLines := make([]string, 0, 2*layout.SongRows())
	if len(state.Songs) == 0 {
		songLines = append(songLines, r.paneRender.RenderEmpty("No songs selected"))
	}
	offset := state.Offsets[types.PaneSongs]
	cursor := state.Cursors[types.PaneSongs]
	for i := offset; i < len(state.Songs) && i < offset+layout.SongRows(); i++ {
		songLines = append(songLines, r.songRender.RenderSong(state.Songs[i], SongRow{
			Position: i + 1,
			Cursor:   i == cursor,
			Focused:  focused,
			Dragging: i == state.DragIndex,
			Width:    width,
		})...)
	}
	for len(songLines) < 2*layout.SongRows() {
		songLines = append(songLines, "")
	}
	lines = append(lines, songLines...)

	lines = append(lines, "")
	focused = state.Focus == types.PaneGifts
	lines = append(lines, r.paneRender.RenderTitle(types.PaneGifts.String(), len(state.Gifts), focused, ""))
	if len(state.Gifts) == 0 {
		lines = append(lines, r.paneRender.RenderEmpty("No spiritual gifts recorded"))
	}
	offset = state.Offsets[types.PaneGifts]
	cursor = state.Cursors[types.PaneGifts]
	for i := offset; i < len(state.Gifts) && i < offset+layout.NoteRows(); i++ {
		lines = append(lines, r.paneRender.RenderGift(state.Gifts[i], i == cursor, focused, width))
	}

	lines = append(lines, "")
	focused = state.Focus == types.PaneAnnouncements
	lines = append(lines, r.paneRender.RenderTitle(types.PaneAnnouncements.String(), len(state.Announcements), focused, ""))
	if len(state.Announcements) == 0 {
		lines = append(lines, r.paneRender.RenderEmpty("No announcements recorded"))
	}
	offset = state.Offsets[types.PaneAnnouncements]
	cursor = state.Cursors[types.PaneAnnouncements]
	for i := offset; i < len(state.Announcements) && i < offset+layout.NoteRows(); i++ {
		lines = append(lines, r.paneRender.RenderAnnouncement(state.Announcements[i], i == cursor, focused, width))
	}
	return lines
}

func (r *Renderer) renderFooter(state ViewState) []string {
	status := ""
	if state.StatusMessage != "" {
		if state.StatusIsError {
			status = r.styles.StatusError.Render(state.StatusMessage)
		} else {
			status = r.styles.Status.Render(state.StatusMessage)
		}
	}

	prompt := ""
	switch {
	case state.Confirming:
		prompt = r.styles.Confirm.Render(state.Prompt)
	case state.Prompt != "":
		prompt = r.styles.Prompt.Render(state.Prompt) + state.TextInput
	}

	keys := state.KeyHelp
	if keys == "" {
		keys = r.styles.Help.Render("Press ? for help")
	}
	return []string{status, prompt, keys}
}
