package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"doxa/internal/eventbus"
)

// ErrLoadInProgress is returned by Load while a previous load is running
var ErrLoadInProgress = errors.New("catalog load already in progress")

// Loader reads the catalog in the background and publishes the result on
// the event bus
type Loader struct {
	bus         eventbus.EventBus
	source      Source
	log         *zap.Logger
	mu          sync.Mutex
	loading     bool
	cancelFunc  context.CancelFunc
	wg          sync.WaitGroup
	unsubscribe func()
}

// NewLoader creates a loader and subscribes it to reload requests
func NewLoader(bus eventbus.EventBus, source Source, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Loader{
		bus:    bus,
		source: source,
		log:    log.Named("loader"),
	}

	l.unsubscribe = bus.Subscribe(eventbus.EventCatalogReloadRequested, func(e eventbus.DomainEvent) {
		if err := l.Load(context.Background()); err != nil {
			l.log.Debug("reload skipped", zap.Error(err))
		}
	})

	return l
}

// Load starts reading the catalog. It returns immediately; the outcome
// arrives as a CatalogLoaded or Error event.
func (l *Loader) Load(ctx context.Context) error {
	l.mu.Lock()
	if l.loading {
		l.mu.Unlock()
		return ErrLoadInProgress
	}
	l.loading = true

	loadCtx, cancel := context.WithCancel(ctx)
	l.cancelFunc = cancel
	l.wg.Add(1)
	l.mu.Unlock()

	l.bus.Publish(eventbus.CatalogLoadStartedEvent{})

	go func() {
		defer l.wg.Done()
		defer func() {
			cancel()
			l.mu.Lock()
			l.loading = false
			l.cancelFunc = nil
			l.mu.Unlock()
		}()

		songs, err := l.source.Songs(loadCtx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				l.log.Debug("catalog load canceled")
				return
			}
			l.log.Error("catalog load failed", zap.Error(err))
			l.bus.Publish(eventbus.ErrorEvent{
				Message: "Failed to load song catalog",
				Err:     fmt.Errorf("load catalog: %w", err),
			})
			return
		}

		l.log.Info("catalog loaded", zap.Int("songs", len(songs)))
		l.bus.Publish(eventbus.CatalogLoadedEvent{Songs: songs})
	}()

	return nil
}

// Loading reports whether a load is running
func (l *Loader) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Stop cancels any running load and waits for it to finish
func (l *Loader) Stop() {
	l.mu.Lock()
	if l.cancelFunc != nil {
		l.cancelFunc()
	}
	l.mu.Unlock()

	l.wg.Wait()
}

// Close stops the loader and drops its reload subscription
func (l *Loader) Close() {
	l.unsubscribe()
	l.Stop()
}
