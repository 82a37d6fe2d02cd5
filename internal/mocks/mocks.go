package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/forkful/client/internal/types"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// List mocks the List method
func (m *MockRecipeService) List(ctx context.Context, filters types.Filters) (*types.RecipeListResponse, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeListResponse), args.Error(1)
}

// Get mocks the Get method
func (m *MockRecipeService) Get(ctx context.Context, id int) (*types.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Recipe), args.Error(1)
}

// MyRecipes mocks the MyRecipes method
func (m *MockRecipeService) MyRecipes(ctx context.Context) ([]types.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Recipe), args.Error(1)
}

// Create mocks the Create method
func (m *MockRecipeService) Create(ctx context.Context, recipe types.NewRecipe, image io.Reader, imageName string) (*types.Recipe, error) {
	args := m.Called(ctx, recipe, image, imageName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Recipe), args.Error(1)
}

// Update mocks the Update method
func (m *MockRecipeService) Update(ctx context.Context, id int, req types.UpdateRecipeRequest) (*types.Recipe, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Recipe), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockRecipeService) Delete(ctx context.Context, recipe *types.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

// AddIngredients mocks the AddIngredients method
func (m *MockRecipeService) AddIngredients(ctx context.Context, recipeID int, items []types.Ingredient) error {
	args := m.Called(ctx, recipeID, items)
	return args.Error(0)
}

// AddInstructions mocks the AddInstructions method
func (m *MockRecipeService) AddInstructions(ctx context.Context, recipeID int, items []types.Instruction) error {
	args := m.Called(ctx, recipeID, items)
	return args.Error(0)
}

// MockCategoryService is a mock implementation of the category service
type MockCategoryService struct {
	mock.Mock
}

// List mocks the List method
func (m *MockCategoryService) List(ctx context.Context) ([]types.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Category), args.Error(1)
}

// ForRecipe mocks the ForRecipe method
func (m *MockCategoryService) ForRecipe(ctx context.Context, recipeID int) ([]types.Category, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Category), args.Error(1)
}

// Attach mocks the Attach method
func (m *MockCategoryService) Attach(ctx context.Context, recipeID int, categoryIDs []int) error {
	args := m.Called(ctx, recipeID, categoryIDs)
	return args.Error(0)
}

// MockNotifier records notifications for assertions
type MockNotifier struct {
	mock.Mock
}

// Success mocks the Success method
func (m *MockNotifier) Success(message string) {
	m.Called(message)
}

// Error mocks the Error method
func (m *MockNotifier) Error(message string) {
	m.Called(message)
}
