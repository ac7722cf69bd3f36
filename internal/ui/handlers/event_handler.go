package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"doxa/internal/eventbus"
	"doxa/internal/plan"
	"doxa/internal/ui/input/types"
	"doxa/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state   *state.AppState
	planner *plan.Planner
	log     *zap.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, planner *plan.Planner, log *zap.Logger) *EventHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &EventHandler{
		state:   appState,
		planner: planner,
		log:     log.Named("events"),
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.CatalogLoadedEvent:
		h.planner.SetCatalog(e.Songs)
		h.state.Loading = false
		h.state.CatalogLoaded = true
		h.state.ClampCursor(types.PaneLibrary, len(h.planner.Results()))
		h.state.SetStatus(fmt.Sprintf("Loaded %d songs", len(e.Songs)))
		h.log.Debug("catalog applied", zap.Int("songs", len(e.Songs)))

	case eventbus.ErrorEvent:
		h.state.Loading = false
		if e.Err != nil {
			h.state.SetError(fmt.Sprintf("Error: %s: %v", e.Message, e.Err))
		} else {
			h.state.SetError(fmt.Sprintf("Error: %s", e.Message))
		}

	default:
		h.log.Debug("ignoring event", zap.String("type", string(event.Type())))
	}

	return nil
}

// ForwardedEvents lists the event types the UI reacts to
var ForwardedEvents = []eventbus.EventType{
	eventbus.EventCatalogLoaded,
	eventbus.EventError,
}
