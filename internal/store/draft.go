package store

import (
	"errors"
	"sync"

	"github.com/forkful/client/internal/types"
)

// ErrNoBaseRecipe rejects dependent submissions before the base recipe has a
// server-assigned id.
var ErrNoBaseRecipe = errors.New("draft has no server-assigned recipe id")

// DraftStore accumulates the in-progress recipe across the creation flow.
// The draft lives only in memory: abandoning the flow discards it and a new
// flow starts from an empty draft. Its ID stays zero until the base recipe
// has been created server-side, and the transitions are additive only; there
// is no removal transition.
type DraftStore struct {
	mu     sync.RWMutex
	recipe types.Recipe
}

// NewDraftStore creates an empty draft
func NewDraftStore() *DraftStore {
	return &DraftStore{}
}

// SetRecipe merges top-level fields into the draft. Zero-valued fields of
// the argument leave the draft untouched, so adopting the server-assigned
// recipe after the base create does not wipe locally accumulated state.
func (d *DraftStore) SetRecipe(r types.Recipe) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if r.ID != 0 {
		d.recipe.ID = r.ID
	}
	if r.Name != "" {
		d.recipe.Name = r.Name
	}
	if r.Description != "" {
		d.recipe.Description = r.Description
	}
	if r.CookingTime != "" {
		d.recipe.CookingTime = r.CookingTime
	}
	if r.Difficulty != "" {
		d.recipe.Difficulty = r.Difficulty
	}
	if r.ServingSize != 0 {
		d.recipe.ServingSize = r.ServingSize
	}
	if r.ImageURL != "" {
		d.recipe.ImageURL = r.ImageURL
	}
	if !r.CreatedAt.IsZero() {
		d.recipe.CreatedAt = r.CreatedAt
	}
	if r.Categories != nil {
		d.recipe.Categories = r.Categories
	}
}

// AddIngredients appends to the draft's ingredient sequence
func (d *DraftStore) AddIngredients(items ...types.Ingredient) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.recipe.Ingredients = append(d.recipe.Ingredients, items...)
}

// AddInstructions appends to the draft's instruction sequence
func (d *DraftStore) AddInstructions(items ...types.Instruction) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.recipe.Instructions = append(d.recipe.Instructions, items...)
}

// Recipe returns a copy of the accumulated draft
func (d *DraftStore) Recipe() types.Recipe {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.recipe
}

// RecipeID returns the server-assigned id, or 0 while the base recipe has
// not been created yet
func (d *DraftStore) RecipeID() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.recipe.ID
}

// Reset discards the draft, returning the store to its initial empty state
func (d *DraftStore) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.recipe = types.Recipe{}
}
