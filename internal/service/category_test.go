package service

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forkful/client/internal/types"
)

func TestCategoryListIsFetchedOnceAndReused(t *testing.T) {
	var hits int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/categories", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`[{"id":1,"name":"Baking","slug":"baking"},{"id":2,"name":"Vegan","slug":"vegan"}]`))
	})
	env := newTestEnv(t, mux)
	svc := NewCategoryService(env.api, env.cache, env.notifier)

	for i := 0; i < 3; i++ {
		cats, err := svc.List(context.Background())
		assert.NoError(t, err)
		assert.Len(t, cats, 2)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestAttachInvalidatesRecipeCategories(t *testing.T) {
	var linkHits int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/categories/recipes-categories/42", func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&linkHits, 1) == 1 {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`[{"id":3,"name":"Baking","slug":"baking"}]`))
	})
	mux.HandleFunc("POST /api/categories/recipes-categories/42", func(w http.ResponseWriter, r *http.Request) {
		var req types.AttachCategoriesRequest
		assert.NoError(t, decodeJSON(r, &req))
		assert.Equal(t, []int{3}, req.CategoryIDs)
		_, _ = w.Write([]byte(`{}`))
	})
	env := newTestEnv(t, mux)
	svc := NewCategoryService(env.api, env.cache, env.notifier)

	before, err := svc.ForRecipe(context.Background(), 42)
	assert.NoError(t, err)
	assert.Empty(t, before)

	assert.NoError(t, svc.Attach(context.Background(), 42, []int{3}))

	// Attach invalidated the cached link set, so this read is fresh.
	after, err := svc.ForRecipe(context.Background(), 42)
	assert.NoError(t, err)
	assert.Len(t, after, 1)
	assert.Equal(t, "Baking", after[0].Name)
}

func TestCommentAddInvalidatesCommentList(t *testing.T) {
	var listHits int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/comments/7/comments", func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&listHits, 1) == 1 {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`[{"id":1,"content":"Lovely","userId":2,"profileName":"Demo"}]`))
	})
	mux.HandleFunc("POST /api/comments/7/comments", func(w http.ResponseWriter, r *http.Request) {
		var req types.CommentRequest
		assert.NoError(t, decodeJSON(r, &req))
		assert.Equal(t, "Lovely", req.Content)
		_, _ = w.Write([]byte(`{"id":1,"content":"Lovely","userId":2,"profileName":"Demo"}`))
	})
	env := newTestEnv(t, mux)
	svc := NewCommentService(env.api, env.cache, env.notifier)

	comments, err := svc.List(context.Background(), 7)
	assert.NoError(t, err)
	assert.Empty(t, comments)

	created, err := svc.Add(context.Background(), 7, "Lovely")
	assert.NoError(t, err)
	assert.Equal(t, "Demo", created.ProfileName)

	comments, err = svc.List(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestRatingSubmitRefreshesAverage(t *testing.T) {
	var avgHits int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/ratings/recipe/7/average", func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&avgHits, 1) == 1 {
			_, _ = w.Write([]byte(`{"averageRating":4.0,"ratingCount":1}`))
			return
		}
		_, _ = w.Write([]byte(`{"averageRating":4.5,"ratingCount":2}`))
	})
	mux.HandleFunc("POST /api/ratings", func(w http.ResponseWriter, r *http.Request) {
		var req types.RatingRequest
		assert.NoError(t, decodeJSON(r, &req))
		assert.Equal(t, types.RatingRequest{Value: 5, RecipeID: 7}, req)
		_, _ = w.Write([]byte(`{}`))
	})
	env := newTestEnv(t, mux)
	svc := NewRatingService(env.api, env.cache, env.notifier)

	summary, err := svc.Average(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, 4.0, summary.AverageRating)

	assert.NoError(t, svc.Submit(context.Background(), 7, 5))

	summary, err = svc.Average(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, 4.5, summary.AverageRating)
	assert.Equal(t, 2, summary.RatingCount)
}
