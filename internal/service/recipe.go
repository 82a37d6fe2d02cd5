package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"path"
	"strconv"

	"github.com/forkful/client/internal/cache"
	"github.com/forkful/client/internal/notify"
	"github.com/forkful/client/internal/transport"
	"github.com/forkful/client/internal/types"
)

// RecipeService handles recipe reads and mutations. Reads go through the
// query cache; mutations invalidate dependent key families on success and
// leave the cache untouched on failure.
type RecipeService struct {
	api            *transport.Client
	cache          *cache.Store
	notifier       notify.Notifier
	images         IImageService
	placeholderURL string
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(api *transport.Client, c *cache.Store, n notify.Notifier, images IImageService, placeholderURL string) *RecipeService {
	return &RecipeService{
		api:            api,
		cache:          c,
		notifier:       n,
		images:         images,
		placeholderURL: placeholderURL,
	}
}

// List fetches one page of the filtered recipe list
func (s *RecipeService) List(ctx context.Context, filters types.Filters) (*types.RecipeListResponse, error) {
	v, err := s.cache.Get(ctx, cache.RecipeListKey(filters), func(ctx context.Context) (interface{}, error) {
		var page types.RecipeListResponse
		if err := s.api.Get(ctx, "/api/recipes", filters.Encode(), &page); err != nil {
			return nil, err
		}
		return &page, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.RecipeListResponse), nil
}

// Get retrieves a single recipe by id
func (s *RecipeService) Get(ctx context.Context, id int) (*types.Recipe, error) {
	v, err := s.cache.Get(ctx, cache.RecipeKey(id), func(ctx context.Context) (interface{}, error) {
		var recipe types.Recipe
		if err := s.api.Get(ctx, fmt.Sprintf("/api/recipes/%d", id), nil, &recipe); err != nil {
			return nil, err
		}
		return &recipe, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.Recipe), nil
}

// MyRecipes retrieves the recipes owned by the session user
func (s *RecipeService) MyRecipes(ctx context.Context) ([]types.Recipe, error) {
	v, err := s.cache.Get(ctx, cache.MyRecipesKey(), func(ctx context.Context) (interface{}, error) {
		var recipes []types.Recipe
		if err := s.api.Get(ctx, "/api/recipes/my-recipes", nil, &recipes); err != nil {
			return nil, err
		}
		return recipes, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]types.Recipe), nil
}

// Create submits the base recipe as a multipart form, image file included
func (s *RecipeService) Create(ctx context.Context, recipe types.NewRecipe, image io.Reader, imageName string) (*types.Recipe, error) {
	fields := map[string]string{
		"name":        recipe.Name,
		"cookingTime": recipe.CookingTime,
		"description": recipe.Description,
	}
	var created types.Recipe
	if err := s.api.PostMultipart(ctx, "/api/recipes", fields, "imageFile", imageName, image, &created); err != nil {
		s.notifier.Error("Failed to create recipe")
		return nil, err
	}
	s.cache.AfterMutation(cache.RecipeCreated, created.ID)
	s.notifier.Success("Recipe created")
	return &created, nil
}

// Update replaces a recipe's editable top-level fields
func (s *RecipeService) Update(ctx context.Context, id int, req types.UpdateRecipeRequest) (*types.Recipe, error) {
	var updated types.Recipe
	if err := s.api.Put(ctx, fmt.Sprintf("/api/recipes/%d", id), req, &updated); err != nil {
		s.notifier.Error("Failed to update recipe")
		return nil, err
	}
	s.cache.AfterMutation(cache.RecipeUpdated, id)
	s.notifier.Success("Recipe updated")
	return &updated, nil
}

// Delete removes a recipe, deleting its uploaded image first unless the
// recipe still carries the shared placeholder image
func (s *RecipeService) Delete(ctx context.Context, recipe *types.Recipe) error {
	if name := s.deletableImageName(recipe.ImageURL); name != "" {
		if err := s.images.Delete(ctx, name); err != nil {
			// The recipe delete still proceeds; an orphaned image is
			// recoverable server-side, a half-deleted recipe is not.
			log.Printf("recipe %d: image delete failed: %v", recipe.ID, err)
		}
	}
	if err := s.api.Delete(ctx, fmt.Sprintf("/api/recipes/%d", recipe.ID), nil); err != nil {
		s.notifier.Error("Failed to delete recipe")
		return err
	}
	s.cache.AfterMutation(cache.RecipeDeleted, recipe.ID)
	s.notifier.Success("Recipe deleted")
	return nil
}

// AddIngredients bulk-creates ingredients for a recipe, preserving order
func (s *RecipeService) AddIngredients(ctx context.Context, recipeID int, items []types.Ingredient) error {
	q := url.Values{"recipeId": {strconv.Itoa(recipeID)}}
	if err := s.api.Post(ctx, "/api/ingredients/bulk", q, items, nil); err != nil {
		s.notifier.Error("Failed to add ingredients")
		return err
	}
	s.cache.AfterMutation(cache.ComponentsAdded, recipeID)
	return nil
}

// AddInstructions bulk-creates instructions for a recipe, preserving order
func (s *RecipeService) AddInstructions(ctx context.Context, recipeID int, items []types.Instruction) error {
	q := url.Values{"recipeId": {strconv.Itoa(recipeID)}}
	if err := s.api.Post(ctx, "/api/instructions/bulk", q, items, nil); err != nil {
		s.notifier.Error("Failed to add instructions")
		return err
	}
	s.cache.AfterMutation(cache.ComponentsAdded, recipeID)
	return nil
}

// deletableImageName extracts the stored file name from an image URL, or
// returns "" when no delete call should be made (empty URL or the
// placeholder every imageless recipe shares).
func (s *RecipeService) deletableImageName(imageURL string) string {
	if imageURL == "" || imageURL == s.placeholderURL {
		return ""
	}
	u, err := url.Parse(imageURL)
	if err != nil {
		return ""
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return ""
	}
	return name
}
