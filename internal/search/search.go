package search

import (
	"context"
	"sync"
	"time"

	"github.com/forkful/client/internal/service"
	"github.com/forkful/client/internal/types"
)

// Searcher debounces search-as-you-type input. Each keystroke restarts the
// debounce timer, so at most one request resolves per debounce window. When
// a new query starts, the in-flight request for the superseded query is
// cancelled; if its response still arrives it is discarded by generation
// stamp and never reaches the result callback.
type Searcher struct {
	mu       sync.Mutex
	svc      service.IRecipeService
	delay    time.Duration
	pageSize int
	timer    *time.Timer
	cancel   context.CancelFunc
	gen      int
	closed   bool

	onResult func(query string, result *types.RecipeListResponse)
	onError  func(query string, err error)
}

// New creates a searcher. onError may be nil; onResult must not be.
func New(svc service.IRecipeService, delay time.Duration, pageSize int, onResult func(string, *types.RecipeListResponse), onError func(string, error)) *Searcher {
	return &Searcher{
		svc:      svc,
		delay:    delay,
		pageSize: pageSize,
		onResult: onResult,
		onError:  onError,
	}
}

// Input records a keystroke's worth of query text and restarts the debounce
// timer
func (s *Searcher) Input(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.begin(query)
	})
}

// Close cancels any pending timer and in-flight request
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
}

func (s *Searcher) begin(query string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	go func() {
		defer cancel()
		filters := types.Filters{Search: query, Page: 1, PageSize: s.pageSize}
		result, err := s.svc.List(ctx, filters)

		s.mu.Lock()
		if s.gen != gen {
			// A newer query started; this result must never become visible.
			s.mu.Unlock()
			return
		}
		s.cancel = nil
		s.mu.Unlock()

		if err != nil {
			if s.onError != nil {
				s.onError(query, err)
			}
			return
		}
		s.onResult(query, result)
	}()
}
