package models

import "time"

// Review is a user's rating of a business. At most one per (userId, businessId).
type Review struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"userId" json:"userId"`
	BusinessID string    `bson:"businessId" json:"businessId"`
	Rating     int       `bson:"rating" json:"rating"`
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ReviewView is a review joined with its author.
type ReviewView struct {
	Review
	User *UserSummary `json:"user,omitempty"`
}

// ReviewInput is the body of POST /api/review/:businessId.
type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewPatch is the body of PUT /api/review/:id.
type ReviewPatch struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

// RatingStats is the aggregate of a business's reviews.
type RatingStats struct {
	Count   int     `bson:"count" json:"count"`
	Average float64 `bson:"average" json:"average"`
}

// MinRating and MaxRating bound Review.Rating.
const (
	MinRating = 1
	MaxRating = 5
)
