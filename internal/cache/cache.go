package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Key identifies a cached query as a structured tuple rather than an ad hoc
// string, so invalidation can address whole resource families.
type Key struct {
	Resource string
	Param    string
}

func (k Key) String() string {
	return k.Resource + ":" + k.Param
}

// FetchFunc performs the network read for a key on a cache miss or refresh
type FetchFunc func(ctx context.Context) (interface{}, error)

type entry struct {
	data      interface{}
	fetchedAt time.Time
}

// Store is the client-side query cache. Reads within the freshness window
// are served from memory; stale reads return the cached value immediately
// while a background refetch replaces it (stale-while-revalidate). Concurrent
// reads of the same key share one in-flight fetch.
//
// The store is only mutated by a successful fetch populating its own key or
// by a mutation invalidating dependent keys. Nothing patches cached data in
// place.
type Store struct {
	mu      sync.RWMutex
	entries map[Key]entry
	ttl     time.Duration
	group   singleflight.Group

	// OnRefreshError observes failed background refreshes. The stale entry
	// is kept and the reader that triggered the refresh is never told.
	OnRefreshError func(Key, error)
}

// NewStore creates a query cache with the given freshness window
func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[Key]entry),
		ttl:     ttl,
	}
}

// Get returns the cached value for key, fetching it if absent. A stale hit
// is returned immediately and refreshed in the background.
func (s *Store) Get(ctx context.Context, key Key, fetch FetchFunc) (interface{}, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if ok {
		if time.Since(e.fetchedAt) < s.ttl {
			return e.data, nil
		}
		go s.refresh(key, fetch)
		return e.data, nil
	}

	v, err, _ := s.group.Do(key.String(), func() (interface{}, error) {
		data, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		s.put(key, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Peek returns the cached value without fetching or refreshing
func (s *Store) Peek(key Key) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return e.data, true
}

// Invalidate drops the exact key
func (s *Store) Invalidate(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// InvalidateResource drops every key of a resource family regardless of
// parameters
func (s *Store) InvalidateResource(resource string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.entries {
		if k.Resource == resource {
			delete(s.entries, k)
		}
	}
}

// Len reports the number of cached entries
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) refresh(key Key, fetch FetchFunc) {
	_, err, _ := s.group.Do(key.String(), func() (interface{}, error) {
		data, err := fetch(context.Background())
		if err != nil {
			return nil, err
		}
		s.put(key, data)
		return data, nil
	})
	if err != nil && s.OnRefreshError != nil {
		s.OnRefreshError(key, err)
	}
}

func (s *Store) put(key Key, data interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{data: data, fetchedAt: time.Now()}
}
