package types

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest is the payload for cookie-based login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewRecipe holds the base-recipe fields collected by the first wizard stage.
// The image file travels alongside as a multipart part, not in this struct.
type NewRecipe struct {
	Name        string
	CookingTime string
	Description string
}

// UpdateRecipeRequest carries the editable top-level recipe fields
type UpdateRecipeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CookingTime string `json:"cookingTime"`
	Difficulty  string `json:"difficulty"`
	ServingSize int    `json:"servingSize"`
	ImageURL    string `json:"imageUrl"`
}

// AttachCategoriesRequest attaches categories to a recipe by id
type AttachCategoriesRequest struct {
	CategoryIDs []int `json:"categoryIds"`
}

// RatingRequest submits a rating for a recipe
type RatingRequest struct {
	Value    int `json:"value"`
	RecipeID int `json:"recipeId"`
}

// CommentRequest adds a comment to a recipe
type CommentRequest struct {
	Content string `json:"content"`
}

// ImageUploadResponse is returned by the image upload endpoint
type ImageUploadResponse struct {
	URL string `json:"url"`
}
