package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"doxa/internal/eventbus"
	"doxa/internal/ui/handlers"
)

// eventBuffer bounds the events waiting for the UI loop
const eventBuffer = 100

// ForwardEvents delivers the events the UI reacts to as EventMsg values via
// send. The returned function unsubscribes and stops forwarding.
func ForwardEvents(bus eventbus.EventBus, send func(tea.Msg), log *zap.Logger) func() {
	if log == nil {
		log = zap.NewNop()
	}
	eventChan := make(chan eventbus.DomainEvent, eventBuffer)
	done := make(chan struct{})

	var mu sync.RWMutex
	closed := false
	enqueue := func(e eventbus.DomainEvent) {
		mu.RLock()
		defer mu.RUnlock()
		if closed {
			return
		}
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			log.Warn("event channel full, dropping event", zap.String("type", string(e.Type())))
		}
	}

	unsubscribers := make([]func(), 0, len(handlers.ForwardedEvents))
	for _, t := range handlers.ForwardedEvents {
		unsubscribers = append(unsubscribers, bus.Subscribe(t, enqueue))
	}

	go func() {
		defer close(done)
		for event := range eventChan {
			send(EventMsg{Event: event})
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			for _, unsubscribe := range unsubscribers {
				unsubscribe()
			}
			mu.Lock()
			closed = true
			close(eventChan)
			mu.Unlock()
			<-done
		})
	}
}
