package input

import (
	"doxa/internal/plan"
	"doxa/internal/ui/input/types"
	"doxa/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State   *state.AppState
	Planner *plan.Planner
}

// FocusedPane returns the pane receiving keys
func (c *ModelContext) FocusedPane() types.Pane {
	return c.State.Focus
}

// CurrentIndex returns the cursor of the focused pane
func (c *ModelContext) CurrentIndex() int {
	return c.State.Cursor(c.State.Focus)
}

// TotalItems returns the number of entries in the focused pane
func (c *ModelContext) TotalItems() int {
	switch c.State.Focus {
	case types.PaneLibrary:
		return len(c.Planner.Results())
	case types.PaneSongs:
		return len(c.Planner.Songs())
	case types.PaneGifts:
		return len(c.Planner.Gifts())
	case types.PaneAnnouncements:
		return len(c.Planner.Announcements())
	}
	return 0
}

// Query returns the live library query
func (c *ModelContext) Query() string {
	return c.Planner.Query()
}

// CurrentContent returns the text of the highlighted gift or announcement
func (c *ModelContext) CurrentContent() string {
	i := c.CurrentIndex()
	switch c.State.Focus {
	case types.PaneGifts:
		if gifts := c.Planner.Gifts(); i >= 0 && i < len(gifts) {
			return gifts[i].Content
		}
	case types.PaneAnnouncements:
		if items := c.Planner.Announcements(); i >= 0 && i < len(items) {
			return items[i].Content
		}
	}
	return ""
}

func (c *ModelContext) ServiceName() string {
	return c.Planner.Service().Name
}

func (c *ModelContext) ServiceDate() string {
	return c.Planner.Service().Date
}
