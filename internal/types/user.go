package types

import "time"

// User represents the authenticated session user
type User struct {
	ID          int    `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	ProfileName string `json:"profileName"`
}

// RecipeComment carries the comment author's denormalized profile fields
type RecipeComment struct {
	ID          int       `json:"id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
	UserID      int       `json:"userId"`
	ProfileName string    `json:"profileName"`
}

// RatingSummary is the server-computed aggregate for a recipe
type RatingSummary struct {
	AverageRating float64 `json:"averageRating"`
	RatingCount   int     `json:"ratingCount"`
}
