package service

import (
	"context"

	"github.com/forkful/client/internal/cache"
	"github.com/forkful/client/internal/transport"
	"github.com/forkful/client/internal/types"
)

// FavoriteService handles the session user's favorited recipes
type FavoriteService struct {
	api   *transport.Client
	cache *cache.Store
}

// NewFavoriteService creates a new FavoriteService instance
func NewFavoriteService(api *transport.Client, c *cache.Store) *FavoriteService {
	return &FavoriteService{api: api, cache: c}
}

// MyFavorites fetches the recipes the session user has favorited
func (s *FavoriteService) MyFavorites(ctx context.Context) ([]types.Recipe, error) {
	v, err := s.cache.Get(ctx, cache.FavoritesKey(), func(ctx context.Context) (interface{}, error) {
		var recipes []types.Recipe
		if err := s.api.Get(ctx, "/api/favorites/my-favorites", nil, &recipes); err != nil {
			return nil, err
		}
		return recipes, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]types.Recipe), nil
}
