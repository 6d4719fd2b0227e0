package eventbus

import (
	"log/slog"
	"runtime/debug"
	"sync"

	"citysearch/internal/domain"
	"citysearch/internal/logging"
)

var busLog = logging.ForComponent(logging.CompBus)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventStoreLoaded       = domain.EventStoreLoaded
	EventStoreLoadFailed   = domain.EventStoreLoadFailed
	EventListShown         = domain.EventListShown
	EventListDismissed     = domain.EventListDismissed
	EventSelectionOpened   = domain.EventSelectionOpened
	EventSelectionFailed   = domain.EventSelectionFailed
	EventSelectionClosed   = domain.EventSelectionClosed
	EventResolverFetchDone = domain.EventResolverFetchDone
)

// Re-export domain event types
type StoreLoadedEvent = domain.StoreLoadedEvent
type StoreLoadFailedEvent = domain.StoreLoadFailedEvent
type ListShownEvent = domain.ListShownEvent
type ListDismissedEvent = domain.ListDismissedEvent
type SelectionOpenedEvent = domain.SelectionOpenedEvent
type SelectionFailedEvent = domain.SelectionFailedEvent
type SelectionClosedEvent = domain.SelectionClosedEvent
type ResolverFetchDoneEvent = domain.ResolverFetchDoneEvent

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
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers. It never blocks the caller.
func (b *bus) Publish(event DomainEvent) {
	busLog.Debug("publish", slog.String("event", string(event.Type())))

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		busLog.Warn("channel full, dropping event", slog.String("event", string(event.Type())))
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.handlers[eventType]
			for i, s := range subs {
				if s.id == id {
					b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
		})
	}
}

// Close stops the dispatcher. Queued events are discarded.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				b.call(s.handler, event)
			}

		case <-b.quit:
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

// call runs one handler and recovers from its panic
func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			busLog.Error("handler panic",
				slog.String("event", string(event.Type())),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
		}
	}()
	h(event)
}
