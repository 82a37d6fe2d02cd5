package service

import (
	"context"
	"fmt"

	"github.com/forkful/client/internal/cache"
	"github.com/forkful/client/internal/notify"
	"github.com/forkful/client/internal/transport"
	"github.com/forkful/client/internal/types"
)

// RatingService handles recipe rating reads and submissions
type RatingService struct {
	api      *transport.Client
	cache    *cache.Store
	notifier notify.Notifier
}

// NewRatingService creates a new RatingService instance
func NewRatingService(api *transport.Client, c *cache.Store, n notify.Notifier) *RatingService {
	return &RatingService{api: api, cache: c, notifier: n}
}

// Average fetches the server-computed rating summary for a recipe
func (s *RatingService) Average(ctx context.Context, recipeID int) (*types.RatingSummary, error) {
	v, err := s.cache.Get(ctx, cache.RatingKey(recipeID), func(ctx context.Context) (interface{}, error) {
		var summary types.RatingSummary
		path := fmt.Sprintf("/api/ratings/recipe/%d/average", recipeID)
		if err := s.api.Get(ctx, path, nil, &summary); err != nil {
			return nil, err
		}
		return &summary, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.RatingSummary), nil
}

// Submit records the session user's rating for a recipe
func (s *RatingService) Submit(ctx context.Context, recipeID, value int) error {
	body := types.RatingRequest{Value: value, RecipeID: recipeID}
	if err := s.api.Post(ctx, "/api/ratings", nil, body, nil); err != nil {
		s.notifier.Error("Failed to submit rating")
		return err
	}
	s.cache.AfterMutation(cache.RatingSubmitted, recipeID)
	s.notifier.Success("Rating submitted")
	return nil
}
