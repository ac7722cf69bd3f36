package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"doxa/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventCatalogLoadStarted     = domain.EventCatalogLoadStarted
	EventCatalogLoaded          = domain.EventCatalogLoaded
	EventCatalogReloadRequested = domain.EventCatalogReloadRequested
	EventSongAdded              = domain.EventSongAdded
	EventSongRemoved            = domain.EventSongRemoved
	EventSongMoved              = domain.EventSongMoved
	EventGiftChanged            = domain.EventGiftChanged
	EventAnnouncementChanged    = domain.EventAnnouncementChanged
	EventServiceInfoChanged     = domain.EventServiceInfoChanged
	EventPlanExported           = domain.EventPlanExported
	EventPlanSaved              = domain.EventPlanSaved
	EventError                  = domain.EventError
)

// Re-export domain event types
type CatalogLoadStartedEvent = domain.CatalogLoadStartedEvent
type CatalogLoadedEvent = domain.CatalogLoadedEvent
type CatalogReloadRequestedEvent = domain.CatalogReloadRequestedEvent
type SongAddedEvent = domain.SongAddedEvent
type SongRemovedEvent = domain.SongRemovedEvent
type SongMovedEvent = domain.SongMovedEvent
type GiftChangedEvent = domain.GiftChangedEvent
type AnnouncementChangedEvent = domain.AnnouncementChangedEvent
type ServiceInfoChangedEvent = domain.ServiceInfoChangedEvent
type PlanExportedEvent = domain.PlanExportedEvent
type PlanSavedEvent = domain.PlanSavedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	log       *zap.Logger
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus. A nil logger disables logging.
func New(log *zap.Logger) EventBus {
	if log == nil {
		log = zap.NewNop()
	}
	b := &bus{
		log:       log.Named("eventbus"),
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers. It never blocks; when the
// queue is full the event is dropped and logged.
func (b *bus) Publish(event DomainEvent) {
	b.log.Debug("publishing event", zap.String("type", string(event.Type())))

	select {
	case <-b.quit:
		b.log.Warn("event published after close", zap.String("type", string(event.Type())))
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		b.log.Warn("event bus channel full, dropping event", zap.String("type", string(event.Type())))
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and drops any queued events
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			// Copy so handlers run without the lock held
			handlersCopy := make([]EventHandler, len(subs))
			for i, s := range subs {
				handlersCopy[i] = s.handler
			}
			b.mu.RUnlock()

			for _, handler := range handlersCopy {
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							b.log.Error("event handler panic",
								zap.String("type", string(eventType)),
								zap.Any("panic", r),
								zap.ByteString("stack", debug.Stack()))
						}
					}()
					h(event)
				}(handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
