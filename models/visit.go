package models

import "time"

// Visit is an append-only record that a user opened a business.
type Visit struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"userId" json:"userId"`
	BusinessID string    `bson:"businessId" json:"businessId"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// VisitCount is the number of visits a business received in a window.
type VisitCount struct {
	BusinessID string `bson:"_id" json:"businessId"`
	Count      int64  `bson:"count" json:"visitCount"`
}

// VisitInput is the body of POST /api/trending.
type VisitInput struct {
	BusinessID string `json:"businessId"`
}

// TrendingEntry is one row of the trending list.
type TrendingEntry struct {
	BusinessID    string   `json:"businessId"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Location      Location `json:"location"`
	Images        []string `json:"images"`
	VisitCount    int64    `json:"visitCount"`
	AverageRating *float64 `json:"averageRating,omitempty"`
	ReviewCount   int      `json:"reviewCount"`
}
