package citydata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citysearch/internal/domain"
	"citysearch/internal/eventbus"
	"citysearch/internal/logic"
)

type stubSource struct {
	items []domain.Suggestion
	err   error
	calls atomic.Int32
	gate  chan struct{}
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Load(ctx context.Context) ([]domain.Suggestion, error) {
	s.calls.Add(1)
	if s.gate != nil {
		<-s.gate
	}
	return s.items, s.err
}

func loadedStore(items ...domain.Suggestion) *logic.MemorySuggestionStore {
	st := logic.NewMemorySuggestionStore()
	st.Replace(items)
	return st
}

func TestStoreResolver(t *testing.T) {
	r := NewStoreResolver(loadedStore(
		domain.Suggestion{City: "Paris", Country: "France"},
		domain.Suggestion{City: "Parma", Country: "Italy"},
	))

	d, err := r.Resolve(context.Background(), domain.Suggestion{City: "Paris"})
	require.NoError(t, err)
	assert.Equal(t, &domain.SelectionDetail{City: "Paris", Country: "France"}, d)

	// idempotent for a stable source
	again, err := r.Resolve(context.Background(), domain.Suggestion{City: "Paris"})
	require.NoError(t, err)
	assert.Equal(t, d, again)

	_, err = r.Resolve(context.Background(), domain.Suggestion{City: "Atlantis"})
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Equal(t, "no_match", Kind(err))
}

func TestStoreResolverEmptyStore(t *testing.T) {
	r := NewStoreResolver(logic.NewMemorySuggestionStore())
	_, err := r.Resolve(context.Background(), domain.Suggestion{City: "Paris"})
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestRemoteResolverExactMatch(t *testing.T) {
	src := &stubSource{items: []domain.Suggestion{
		{City: "paris", Country: "Nowhere"},
		{City: "Paris", Country: "France"},
		{City: "Paris", Country: "United States"},
	}}
	bus := eventbus.New()
	defer bus.Close()
	fetched := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventResolverFetchDone, func(e eventbus.DomainEvent) { fetched <- e })

	r := NewRemoteResolver(src, bus)
	d, err := r.Resolve(context.Background(), domain.Suggestion{City: "Paris"})
	require.NoError(t, err)
	assert.Equal(t, "France", d.Country)

	select {
	case e := <-fetched:
		assert.Equal(t, 3, e.(eventbus.ResolverFetchDoneEvent).Entries)
	case <-time.After(time.Second):
		t.Fatal("fetch event not published")
	}
}

func TestRemoteResolverFailures(t *testing.T) {
	t.Run("absent entry", func(t *testing.T) {
		r := NewRemoteResolver(&stubSource{items: []domain.Suggestion{{City: "Parma"}}}, nil)
		_, err := r.Resolve(context.Background(), domain.Suggestion{City: "Paris"})
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("fetch error passes through", func(t *testing.T) {
		r := NewRemoteResolver(&stubSource{err: &FetchError{URL: "stub", StatusCode: 500}}, nil)
		_, err := r.Resolve(context.Background(), domain.Suggestion{City: "Paris"})
		assert.ErrorIs(t, err, ErrFetch)
	})

	t.Run("http parse error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		}))
		defer srv.Close()

		r := NewRemoteResolver(NewHTTPSource(srv.URL, time.Second), nil)
		_, err := r.Resolve(context.Background(), domain.Suggestion{City: "Paris"})
		assert.ErrorIs(t, err, ErrParse)
	})
}

func TestRemoteResolverSharesInFlightFetch(t *testing.T) {
	src := &stubSource{
		items: []domain.Suggestion{{City: "Paris", Country: "France"}},
		gate:  make(chan struct{}),
	}
	r := NewRemoteResolver(src, nil)

	var wg sync.WaitGroup
	results := make([]*domain.SelectionDetail, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d, err := r.Resolve(context.Background(), domain.Suggestion{City: "Paris"})
			assert.NoError(t, err)
			results[i] = d
		}(i)
	}

	// let both callers reach the singleflight group before releasing the fetch
	require.Eventually(t, func() bool { return src.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	close(src.gate)
	wg.Wait()

	assert.Equal(t, int32(1), src.calls.Load())
	assert.Equal(t, results[0], results[1])
}

func TestNewResolver(t *testing.T) {
	store := logic.NewMemorySuggestionStore()
	src := &stubSource{}

	r, err := NewResolver("", store, src, nil)
	require.NoError(t, err)
	assert.IsType(t, &StoreResolver{}, r)

	r, err = NewResolver(ResolverRemote, store, src, nil)
	require.NoError(t, err)
	assert.IsType(t, &RemoteResolver{}, r)

	_, err = NewResolver("cache", store, src, nil)
	assert.Error(t, err)
}
