package service

import (
	"context"
	"fmt"

	"github.com/forkful/client/internal/cache"
	"github.com/forkful/client/internal/notify"
	"github.com/forkful/client/internal/transport"
	"github.com/forkful/client/internal/types"
)

// CommentService handles recipe comment reads and submissions
type CommentService struct {
	api      *transport.Client
	cache    *cache.Store
	notifier notify.Notifier
}

// NewCommentService creates a new CommentService instance
func NewCommentService(api *transport.Client, c *cache.Store, n notify.Notifier) *CommentService {
	return &CommentService{api: api, cache: c, notifier: n}
}

// List fetches a recipe's comments
func (s *CommentService) List(ctx context.Context, recipeID int) ([]types.RecipeComment, error) {
	v, err := s.cache.Get(ctx, cache.CommentsKey(recipeID), func(ctx context.Context) (interface{}, error) {
		var comments []types.RecipeComment
		path := fmt.Sprintf("/api/comments/%d/comments", recipeID)
		if err := s.api.Get(ctx, path, nil, &comments); err != nil {
			return nil, err
		}
		return comments, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]types.RecipeComment), nil
}

// Add posts a comment on a recipe
func (s *CommentService) Add(ctx context.Context, recipeID int, content string) (*types.RecipeComment, error) {
	var created types.RecipeComment
	path := fmt.Sprintf("/api/comments/%d/comments", recipeID)
	if err := s.api.Post(ctx, path, nil, types.CommentRequest{Content: content}, &created); err != nil {
		s.notifier.Error("Failed to add comment")
		return nil, err
	}
	s.cache.AfterMutation(cache.CommentAdded, recipeID)
	return &created, nil
}
