package cache

import (
	"strconv"

	"github.com/forkful/client/internal/types"
)

// Resource family names used as the first half of every cache key
const (
	ResourceRecipe           = "recipe"
	ResourceRecipeList       = "recipe-list"
	ResourceMyRecipes        = "my-recipes"
	ResourceCategories       = "categories"
	ResourceRecipeCategories = "recipe-categories"
	ResourceComments         = "comments"
	ResourceRating           = "rating"
	ResourceFavorites        = "favorites"
)

// RecipeKey addresses a single recipe detail
func RecipeKey(id int) Key {
	return Key{Resource: ResourceRecipe, Param: strconv.Itoa(id)}
}

// RecipeListKey addresses one page of the filtered recipe list. Encoding via
// url.Values keeps the parameter string canonical regardless of field order.
func RecipeListKey(f types.Filters) Key {
	return Key{Resource: ResourceRecipeList, Param: f.Encode().Encode()}
}

// MyRecipesKey addresses the session user's recipes
func MyRecipesKey() Key {
	return Key{Resource: ResourceMyRecipes}
}

// CategoriesKey addresses the full category reference list
func CategoriesKey() Key {
	return Key{Resource: ResourceCategories}
}

// RecipeCategoriesKey addresses the categories attached to a recipe
func RecipeCategoriesKey(recipeID int) Key {
	return Key{Resource: ResourceRecipeCategories, Param: strconv.Itoa(recipeID)}
}

// CommentsKey addresses a recipe's comment list
func CommentsKey(recipeID int) Key {
	return Key{Resource: ResourceComments, Param: strconv.Itoa(recipeID)}
}

// RatingKey addresses a recipe's rating summary
func RatingKey(recipeID int) Key {
	return Key{Resource: ResourceRating, Param: strconv.Itoa(recipeID)}
}

// FavoritesKey addresses the session user's favorited recipes
func FavoritesKey() Key {
	return Key{Resource: ResourceFavorites}
}

// Mutation identifies a cache-invalidating write
type Mutation int

const (
	RecipeCreated Mutation = iota
	RecipeUpdated
	RecipeDeleted
	CategoriesAttached
	RatingSubmitted
	CommentAdded
	ComponentsAdded // bulk ingredients or instructions
)

type scope int

const (
	scopeExact     scope = iota // one key, no parameter
	scopePerRecipe              // one key parameterized by recipe id
	scopeFamily                 // every key of the resource
)

type target struct {
	resource string
	scope    scope
}

// invalidations is the dependency table: which key families each mutation
// dirties. Mutations never patch cached data; they only force fresh reads.
var invalidations = map[Mutation][]target{
	RecipeCreated: {
		{ResourceRecipeList, scopeFamily},
		{ResourceMyRecipes, scopeExact},
	},
	RecipeUpdated: {
		{ResourceRecipe, scopePerRecipe},
		{ResourceRecipeList, scopeFamily},
		{ResourceMyRecipes, scopeExact},
		{ResourceFavorites, scopeExact},
	},
	RecipeDeleted: {
		{ResourceRecipe, scopePerRecipe},
		{ResourceRecipeList, scopeFamily},
		{ResourceMyRecipes, scopeExact},
		{ResourceFavorites, scopeExact},
		{ResourceRecipeCategories, scopePerRecipe},
		{ResourceComments, scopePerRecipe},
		{ResourceRating, scopePerRecipe},
	},
	CategoriesAttached: {
		{ResourceRecipeCategories, scopePerRecipe},
		{ResourceRecipe, scopePerRecipe},
	},
	RatingSubmitted: {
		{ResourceRating, scopePerRecipe},
		{ResourceRecipe, scopePerRecipe},
		{ResourceRecipeList, scopeFamily},
	},
	CommentAdded: {
		{ResourceComments, scopePerRecipe},
	},
	ComponentsAdded: {
		{ResourceRecipe, scopePerRecipe},
	},
}

// AfterMutation applies the dependency table for a successful mutation
func (s *Store) AfterMutation(m Mutation, recipeID int) {
	for _, t := range invalidations[m] {
		switch t.scope {
		case scopeExact:
			s.Invalidate(Key{Resource: t.resource})
		case scopePerRecipe:
			s.Invalidate(Key{Resource: t.resource, Param: strconv.Itoa(recipeID)})
		case scopeFamily:
			s.InvalidateResource(t.resource)
		}
	}
}
