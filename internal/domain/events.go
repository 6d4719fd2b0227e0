package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventStoreLoaded       EventType = "StoreLoaded"
	EventStoreLoadFailed   EventType = "StoreLoadFailed"
	EventListShown         EventType = "ListShown"
	EventListDismissed     EventType = "ListDismissed"
	EventSelectionOpened   EventType = "SelectionOpened"
	EventSelectionFailed   EventType = "SelectionFailed"
	EventSelectionClosed   EventType = "SelectionClosed"
	EventResolverFetchDone EventType = "ResolverFetchDone"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// StoreLoadedEvent is emitted once the suggestion store has been populated
type StoreLoadedEvent struct {
	Count int
}

func (e StoreLoadedEvent) Type() EventType { return EventStoreLoaded }

// StoreLoadFailedEvent is emitted when the initial load fails; the store stays empty
type StoreLoadFailedEvent struct {
	Err error
}

func (e StoreLoadFailedEvent) Type() EventType { return EventStoreLoadFailed }

// ListShownEvent is emitted when the suggestion list becomes visible
type ListShownEvent struct {
	Query string
	Count int
}

func (e ListShownEvent) Type() EventType { return EventListShown }

// ListDismissedEvent is emitted when a click outside the widget hides the list
type ListDismissedEvent struct{}

func (e ListDismissedEvent) Type() EventType { return EventListDismissed }

// SelectionOpenedEvent is emitted when the detail modal opens
type SelectionOpenedEvent struct {
	Detail SelectionDetail
}

func (e SelectionOpenedEvent) Type() EventType { return EventSelectionOpened }

// SelectionFailedEvent is emitted when a selected city could not be resolved
type SelectionFailedEvent struct {
	City string
	Err  error
}

func (e SelectionFailedEvent) Type() EventType { return EventSelectionFailed }

// SelectionClosedEvent is emitted when the detail modal is closed
type SelectionClosedEvent struct {
	City string
}

func (e SelectionClosedEvent) Type() EventType { return EventSelectionClosed }

// ResolverFetchDoneEvent is emitted by the remote resolver after each dataset fetch
type ResolverFetchDoneEvent struct {
	URL     string
	Entries int
	Err     error
}

func (e ResolverFetchDoneEvent) Type() EventType { return EventResolverFetchDone }
