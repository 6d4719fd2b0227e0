package citydata

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"citysearch/internal/domain"
	"citysearch/internal/eventbus"
	"citysearch/internal/logging"
	"citysearch/internal/logic"
)

var resolverLog = logging.ForComponent(logging.CompResolver)

// Resolver turns a chosen suggestion into the detail shown in the modal
type Resolver interface {
	Resolve(ctx context.Context, selected domain.Suggestion) (*domain.SelectionDetail, error)
}

// Resolver kinds accepted by NewResolver
const (
	ResolverStore  = "store"
	ResolverRemote = "remote"
)

// NewResolver builds the resolver named by kind
func NewResolver(kind string, store logic.SuggestionStore, source Source, bus eventbus.EventBus) (Resolver, error) {
	switch kind {
	case "", ResolverStore:
		return NewStoreResolver(store), nil
	case ResolverRemote:
		return NewRemoteResolver(source, bus), nil
	default:
		return nil, fmt.Errorf("unknown resolver %q", kind)
	}
}

// StoreResolver resolves from the already loaded suggestion store
type StoreResolver struct {
	store logic.SuggestionStore
}

func NewStoreResolver(store logic.SuggestionStore) *StoreResolver {
	return &StoreResolver{store: store}
}

func (r *StoreResolver) Resolve(ctx context.Context, selected domain.Suggestion) (*domain.SelectionDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s, ok := r.store.Lookup(selected.City)
	if !ok {
		return nil, &NoMatchError{City: selected.City}
	}
	return s.Detail(), nil
}

// RemoteResolver fetches the whole data set again and looks the city up in
// it. Concurrent resolutions share a single in-flight fetch.
type RemoteResolver struct {
	source Source
	bus    eventbus.EventBus
	group  singleflight.Group
}

func NewRemoteResolver(source Source, bus eventbus.EventBus) *RemoteResolver {
	return &RemoteResolver{source: source, bus: bus}
}

func (r *RemoteResolver) Resolve(ctx context.Context, selected domain.Suggestion) (*domain.SelectionDetail, error) {
	v, err, shared := r.group.Do(r.source.Name(), func() (any, error) {
		items, err := r.source.Load(ctx)
		if r.bus != nil {
			r.bus.Publish(eventbus.ResolverFetchDoneEvent{URL: r.source.Name(), Entries: len(items), Err: err})
		}
		return items, err
	})
	if err != nil {
		return nil, err
	}
	resolverLog.Debug("dataset fetched",
		slog.String("city", selected.City),
		slog.Bool("shared", shared))

	for _, s := range v.([]domain.Suggestion) {
		if s.City == selected.City {
			return s.Detail(), nil
		}
	}
	return nil, &NoMatchError{City: selected.City}
}
