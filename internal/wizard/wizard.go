package wizard

import (
	"context"
	"errors"
	"io"
	"log"
	"sort"
	"sync"

	"github.com/forkful/client/internal/service"
	"github.com/forkful/client/internal/store"
	"github.com/forkful/client/internal/types"
)

// Stage identifies a step of the linear recipe creation flow
type Stage int

const (
	StageBase Stage = iota
	StageCategories
	StageComponents
	StagePreview
)

var (
	// ErrWrongStage rejects an operation issued out of stage order
	ErrWrongStage = errors.New("operation not valid for current stage")
	// ErrIncompleteBase rejects a base submission missing required fields
	ErrIncompleteBase = errors.New("recipe name and image are required")
	// ErrInvalidUnit rejects an ingredient with an unknown measurement unit
	ErrInvalidUnit = errors.New("unknown measurement unit")
)

// Wizard runs the three-stage recipe creation flow over the draft store:
// base recipe, then categories, then ingredients and instructions. Each
// stage submits only after the previous stage's server result is stored,
// and a failed submission leaves the user on the same stage with no
// rollback of completed stages.
type Wizard struct {
	mu         sync.Mutex
	stage      Stage
	draft      *store.DraftStore
	recipes    service.IRecipeService
	categories service.ICategoryService
	lastErr    error

	selected            map[int]bool
	pendingIngredients  []types.Ingredient
	pendingInstructions []types.Instruction
}

// New creates a wizard starting at the base stage with an empty draft
func New(draft *store.DraftStore, recipes service.IRecipeService, categories service.ICategoryService) *Wizard {
	draft.Reset()
	return &Wizard{
		draft:      draft,
		recipes:    recipes,
		categories: categories,
		selected:   make(map[int]bool),
	}
}

// Stage returns the current stage
func (w *Wizard) Stage() Stage {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stage
}

// Err returns the most recent stage submission failure, if any
func (w *Wizard) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Draft returns a copy of the accumulated draft
func (w *Wizard) Draft() types.Recipe {
	return w.draft.Recipe()
}

// SubmitBase creates the base recipe with its image and stores the
// server-assigned result into the draft
func (w *Wizard) SubmitBase(ctx context.Context, recipe types.NewRecipe, image io.Reader, imageName string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stage != StageBase {
		return ErrWrongStage
	}
	if recipe.Name == "" || image == nil {
		return ErrIncompleteBase
	}

	created, err := w.recipes.Create(ctx, recipe, image, imageName)
	if err != nil {
		w.fail("base recipe", err)
		return err
	}
	w.draft.SetRecipe(*created)
	w.lastErr = nil
	w.stage = StageCategories
	return nil
}

// ToggleCategory flips a category in the locally held selection. Nothing is
// persisted until SubmitCategories.
func (w *Wizard) ToggleCategory(id int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.selected[id] {
		delete(w.selected, id)
	} else {
		w.selected[id] = true
	}
}

// SelectedCategories returns the locally selected category ids in ascending
// order
func (w *Wizard) SelectedCategories() []int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selectedIDs()
}

// SubmitCategories attaches the selected categories to the draft's recipe,
// then re-fetches them from the server into the draft
func (w *Wizard) SubmitCategories(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stage != StageCategories {
		return ErrWrongStage
	}
	recipeID := w.draft.RecipeID()
	if recipeID == 0 {
		return store.ErrNoBaseRecipe
	}

	if err := w.categories.Attach(ctx, recipeID, w.selectedIDs()); err != nil {
		w.fail("categories", err)
		return err
	}
	attached, err := w.categories.ForRecipe(ctx, recipeID)
	if err != nil {
		w.fail("categories", err)
		return err
	}
	w.draft.SetRecipe(types.Recipe{Categories: attached})
	w.lastErr = nil
	w.stage = StageComponents
	return nil
}

// AddIngredient appends to the local ingredient sequence. No server call is
// made per item.
func (w *Wizard) AddIngredient(item types.Ingredient) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stage != StageComponents {
		return ErrWrongStage
	}
	if !types.IsValidUnit(item.Unit) {
		return ErrInvalidUnit
	}
	w.pendingIngredients = append(w.pendingIngredients, item)
	return nil
}

// AddInstruction appends to the local instruction sequence
func (w *Wizard) AddInstruction(item types.Instruction) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stage != StageComponents {
		return ErrWrongStage
	}
	w.pendingInstructions = append(w.pendingInstructions, item)
	return nil
}

// SubmitComponents bulk-submits the accumulated ingredients and
// instructions, one call per sequence type, and advances to the preview
// stage. If the instruction call fails after the ingredient call succeeded,
// the ingredients stay submitted; retrying resubmits only the instructions.
func (w *Wizard) SubmitComponents(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stage != StageComponents {
		return ErrWrongStage
	}
	recipeID := w.draft.RecipeID()
	if recipeID == 0 {
		return store.ErrNoBaseRecipe
	}

	if len(w.pendingIngredients) > 0 {
		if err := w.recipes.AddIngredients(ctx, recipeID, w.pendingIngredients); err != nil {
			w.fail("ingredients", err)
			return err
		}
		w.draft.AddIngredients(w.pendingIngredients...)
		w.pendingIngredients = nil
	}
	if len(w.pendingInstructions) > 0 {
		if err := w.recipes.AddInstructions(ctx, recipeID, w.pendingInstructions); err != nil {
			w.fail("instructions", err)
			return err
		}
		w.draft.AddInstructions(w.pendingInstructions...)
		w.pendingInstructions = nil
	}
	w.lastErr = nil
	w.stage = StagePreview
	return nil
}

// Abandon discards the draft and all local state. A recipe already created
// server-side by an earlier stage is not rolled back.
func (w *Wizard) Abandon() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Reset()
	w.stage = StageBase
	w.lastErr = nil
	w.selected = make(map[int]bool)
	w.pendingIngredients = nil
	w.pendingInstructions = nil
}

func (w *Wizard) selectedIDs() []int {
	ids := make([]int, 0, len(w.selected))
	for id := range w.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (w *Wizard) fail(stage string, err error) {
	w.lastErr = err
	log.Printf("wizard: %s stage failed: %v", stage, err)
}
