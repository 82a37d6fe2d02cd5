package types

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Recipe represents a recipe as returned by the API
type Recipe struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	CookingTime   string        `json:"cookingTime"`
	Difficulty    string        `json:"difficulty"`
	ServingSize   int           `json:"servingSize"`
	AverageRating float64       `json:"averageRating"`
	RatingCount   int           `json:"ratingCount"`
	ImageURL      string        `json:"imageUrl"`
	CreatedAt     time.Time     `json:"createdAt"`
	Categories    []Category    `json:"categories,omitempty"`
	Ingredients   []Ingredient  `json:"ingredients,omitempty"`
	Instructions  []Instruction `json:"instructions,omitempty"`
}

// Category is reference data; the client never mutates category identity
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Ingredient quantity is free text and never parsed numerically
type Ingredient struct {
	ID       int    `json:"id,omitempty"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Name     string `json:"name"`
	RecipeID int    `json:"recipeId,omitempty"`
}

// Instruction order is carried by slice position; there is no ordinal field
type Instruction struct {
	ID       int    `json:"id,omitempty"`
	Text     string `json:"text"`
	RecipeID int    `json:"recipeId,omitempty"`
}

// MeasurementUnits is the fixed set of units an ingredient may use
var MeasurementUnits = []string{"g", "kg", "ml", "L", "tsp", "tbsp", "cup", "oz", "lb", "pcs"}

// IsValidUnit reports whether unit is one of the fixed measurement units
func IsValidUnit(unit string) bool {
	for _, u := range MeasurementUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// RecipeListResponse is the paginated recipe list payload
type RecipeListResponse struct {
	Recipes    []Recipe `json:"recipes"`
	TotalPages int      `json:"totalPages"`
}

// Filters parameterizes the recipe list query. Filters are ephemeral and
// client-only; they are never persisted.
type Filters struct {
	Search      string
	Page        int
	PageSize    int
	Categories  []string
	SortBy      string
	IsAscending bool
}

// Encode renders the filters as the recipe list query string
func (f Filters) Encode() url.Values {
	v := url.Values{}
	v.Set("search", f.Search)
	v.Set("page", strconv.Itoa(f.Page))
	v.Set("pageSize", strconv.Itoa(f.PageSize))
	v.Set("categories", strings.Join(f.Categories, ","))
	v.Set("sortBy", f.SortBy)
	v.Set("isAscending", strconv.FormatBool(f.IsAscending))
	return v
}
