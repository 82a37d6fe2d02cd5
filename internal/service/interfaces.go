package service

import (
	"context"
	"io"

	"github.com/forkful/client/internal/types"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	List(ctx context.Context, filters types.Filters) (*types.RecipeListResponse, error)
	Get(ctx context.Context, id int) (*types.Recipe, error)
	MyRecipes(ctx context.Context) ([]types.Recipe, error)
	Create(ctx context.Context, recipe types.NewRecipe, image io.Reader, imageName string) (*types.Recipe, error)
	Update(ctx context.Context, id int, req types.UpdateRecipeRequest) (*types.Recipe, error)
	Delete(ctx context.Context, recipe *types.Recipe) error
	AddIngredients(ctx context.Context, recipeID int, items []types.Ingredient) error
	AddInstructions(ctx context.Context, recipeID int, items []types.Instruction) error
}

// ICategoryService defines the interface for category reference data
type ICategoryService interface {
	List(ctx context.Context) ([]types.Category, error)
	ForRecipe(ctx context.Context, recipeID int) ([]types.Category, error)
	Attach(ctx context.Context, recipeID int, categoryIDs []int) error
}

// IRatingService defines the interface for rating operations
type IRatingService interface {
	Average(ctx context.Context, recipeID int) (*types.RatingSummary, error)
	Submit(ctx context.Context, recipeID, value int) error
}

// ICommentService defines the interface for recipe comments
type ICommentService interface {
	List(ctx context.Context, recipeID int) ([]types.RecipeComment, error)
	Add(ctx context.Context, recipeID int, content string) (*types.RecipeComment, error)
}

// IImageService defines the interface for image upload and deletion
type IImageService interface {
	Upload(ctx context.Context, fileName string, file io.Reader) (string, error)
	Delete(ctx context.Context, fileName string) error
}

// IAccountService defines the interface for session and account operations
type IAccountService interface {
	Register(ctx context.Context, req types.RegisterRequest) error
	Login(ctx context.Context, email, password string) (*types.User, error)
	Logout(ctx context.Context) error
	SessionCheck(ctx context.Context) (*types.User, error)
}

// IFavoriteService defines the interface for the user's favorited recipes
type IFavoriteService interface {
	MyFavorites(ctx context.Context) ([]types.Recipe, error)
}
