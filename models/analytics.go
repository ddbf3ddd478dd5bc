package models

import "time"

// Totals counts every primary collection.
type Totals struct {
	Users      int64 `json:"users"`
	Businesses int64 `json:"businesses"`
	Reviews    int64 `json:"reviews"`
	Follows    int64 `json:"follows"`
}

// RatedBusiness is a business ranked by its stored rating.
type RatedBusiness struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AverageRating float64 `json:"averageRating"`
	NumReviews    int     `json:"numReviews"`
}

// RecentUser is the minimal projection of a newly registered user.
type RecentUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// RecentBusiness is the minimal projection of a newly created business.
type RecentBusiness struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string       `json:"category"`
	Owner     *UserSummary `json:"owner,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// BusinessRef names a business without its full document.
type BusinessRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RecentReview is the minimal projection of a newly posted review. User and
// Business are nil when the referenced document no longer exists.
type RecentReview struct {
	ID         string       `json:"id"`
	UserID     string       `json:"userId"`
	BusinessID string       `json:"businessId"`
	User       *UserSummary `json:"user,omitempty"`
	Business   *BusinessRef `json:"business,omitempty"`
	Rating     int          `json:"rating"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// AnalyticsReport is the admin dashboard payload.
type AnalyticsReport struct {
	Totals                 Totals             `json:"totals"`
	MostFollowedBusinesses []FollowedBusiness `json:"mostFollowedBusinesses"`
	TopRatedBusinesses     []RatedBusiness    `json:"topRatedBusinesses"`
	RecentUsers            []RecentUser       `json:"recentUsers"`
	RecentBusinesses       []RecentBusiness   `json:"recentBusinesses"`
	RecentReviews          []RecentReview     `json:"recentReviews"`
}
