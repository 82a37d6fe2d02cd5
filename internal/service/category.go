package service

import (
	"context"
	"fmt"

	"github.com/forkful/client/internal/cache"
	"github.com/forkful/client/internal/notify"
	"github.com/forkful/client/internal/transport"
	"github.com/forkful/client/internal/types"
)

// CategoryService handles category reference data and recipe-category links
type CategoryService struct {
	api      *transport.Client
	cache    *cache.Store
	notifier notify.Notifier
}

// NewCategoryService creates a new CategoryService instance
func NewCategoryService(api *transport.Client, c *cache.Store, n notify.Notifier) *CategoryService {
	return &CategoryService{api: api, cache: c, notifier: n}
}

// List fetches the full category reference set
func (s *CategoryService) List(ctx context.Context) ([]types.Category, error) {
	v, err := s.cache.Get(ctx, cache.CategoriesKey(), func(ctx context.Context) (interface{}, error) {
		var categories []types.Category
		if err := s.api.Get(ctx, "/api/categories", nil, &categories); err != nil {
			return nil, err
		}
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]types.Category), nil
}

// ForRecipe fetches the categories attached to a recipe
func (s *CategoryService) ForRecipe(ctx context.Context, recipeID int) ([]types.Category, error) {
	v, err := s.cache.Get(ctx, cache.RecipeCategoriesKey(recipeID), func(ctx context.Context) (interface{}, error) {
		var categories []types.Category
		path := fmt.Sprintf("/api/categories/recipes-categories/%d", recipeID)
		if err := s.api.Get(ctx, path, nil, &categories); err != nil {
			return nil, err
		}
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]types.Category), nil
}

// Attach links category ids to a recipe
func (s *CategoryService) Attach(ctx context.Context, recipeID int, categoryIDs []int) error {
	path := fmt.Sprintf("/api/categories/recipes-categories/%d", recipeID)
	body := types.AttachCategoriesRequest{CategoryIDs: categoryIDs}
	if err := s.api.Post(ctx, path, nil, body, nil); err != nil {
		s.notifier.Error("Failed to save categories")
		return err
	}
	s.cache.AfterMutation(cache.CategoriesAttached, recipeID)
	return nil
}
