package service

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/forkful/client/config"
	"github.com/forkful/client/internal/cache"
	"github.com/forkful/client/internal/transport"
)

// recordingNotifier captures notifications for assertions
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func (n *recordingNotifier) Errors() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.errors...)
}

func (n *recordingNotifier) Successes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.successes...)
}

type testEnv struct {
	api      *transport.Client
	cache    *cache.Store
	notifier *recordingNotifier
	cfg      *config.Config
}

func newTestEnv(t *testing.T, handler http.Handler) *testEnv {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		APIBaseURL:          srv.URL,
		RequestTimeout:      5 * time.Second,
		CacheTTL:            time.Minute,
		PageSize:            5,
		PlaceholderImageURL: config.DefaultPlaceholderImageURL,
	}
	return &testEnv{
		api:      transport.New(cfg),
		cache:    cache.NewStore(cfg.CacheTTL),
		notifier: &recordingNotifier{},
		cfg:      cfg,
	}
}

func (e *testEnv) recipes() *RecipeService {
	images := NewImageService(e.api, e.notifier)
	return NewRecipeService(e.api, e.cache, e.notifier, images, e.cfg.PlaceholderImageURL)
}
