package pager

import (
	"context"
	"sync"

	"github.com/forkful/client/internal/service"
	"github.com/forkful/client/internal/types"
)

// Controller drives the infinite recipe list. Pages are requested strictly
// in increasing order; a new request is never started while one is in
// flight, and changing the filters discards everything accumulated so far.
type Controller struct {
	mu         sync.Mutex
	recipes    []types.Recipe
	filters    types.Filters
	pageSize   int
	page       int // last page appended; 0 before the first load
	totalPages int
	inFlight   bool
	epoch      int // bumped by every filter change to discard stale results
	svc        service.IRecipeService
}

// New creates a controller over the recipe service
func New(svc service.IRecipeService, pageSize int) *Controller {
	return &Controller{svc: svc, pageSize: pageSize}
}

// LoadMore fetches the next sequential page if no fetch is in flight and a
// further page exists. It reports whether a page was appended.
func (c *Controller) LoadMore(ctx context.Context) (bool, error) {
	c.mu.Lock()
	if c.inFlight || !c.hasMore() {
		c.mu.Unlock()
		return false, nil
	}
	next := c.page + 1
	epoch := c.epoch
	f := c.filters
	f.Page = next
	f.PageSize = c.pageSize
	c.inFlight = true
	c.mu.Unlock()

	resp, err := c.svc.List(ctx, f)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		// Filters changed while the request was out; the result belongs
		// to a discarded accumulation.
		return false, nil
	}
	c.inFlight = false
	if err != nil {
		return false, err
	}
	c.recipes = append(c.recipes, resp.Recipes...)
	c.page = next
	c.totalPages = resp.TotalPages
	return true, nil
}

// SetFilters replaces the filters and resets the accumulation to page 1
func (c *Controller) SetFilters(f types.Filters) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f.Page = 0
	f.PageSize = 0
	c.filters = f
	c.recipes = nil
	c.page = 0
	c.totalPages = 0
	c.inFlight = false
	c.epoch++
}

// Recipes returns a copy of the accumulated list
func (c *Controller) Recipes() []types.Recipe {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// Page returns the last appended page number
func (c *Controller) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// HasMore reports whether a further page is known to exist
func (c *Controller) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMore()
}

func (c *Controller) hasMore() bool {
	return c.page == 0 || c.page < c.totalPages
}
