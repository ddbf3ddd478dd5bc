package models

import "time"

// Contact holds a business's public contact details.
type Contact struct {
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
}

// Location is a GeoJSON point extended with a postal address; the 2dsphere index reads type/coordinates.
type Location struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
	City        string    `bson:"city,omitempty" json:"city,omitempty"`
	State       string    `bson:"state,omitempty" json:"state,omitempty"`
}

// Hours is an opening window, e.g. {"open":"09:00","close":"18:00"}.
type Hours struct {
	Open  string `bson:"open" json:"open"`
	Close string `bson:"close" json:"close"`
}

// Weekdays accepted as openingHours keys.
var Weekdays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// Business is a listed local business. AverageRating and NumReviews are derived from its reviews.
type Business struct {
	ID            string           `bson:"id" json:"id"`
	OwnerID       string           `bson:"ownerId" json:"ownerId"`
	Name          string           `bson:"name" json:"name"`
	Description   string           `bson:"description,omitempty" json:"description,omitempty"`
	Category      string           `bson:"category" json:"category"`
	Images        []string         `bson:"images" json:"images"`
	Contact       Contact          `bson:"contact" json:"contact"`
	Location      Location         `bson:"location" json:"location"`
	OpeningHours  map[string]Hours `bson:"openingHours,omitempty" json:"openingHours,omitempty"`
	IsVerified    bool             `bson:"isVerified" json:"isVerified"`
	IsFeatured    bool             `bson:"isFeatured" json:"isFeatured"`
	AverageRating float64          `bson:"averageRating" json:"averageRating"`
	NumReviews    int              `bson:"numReviews" json:"numReviews"`
	CreatedAt     time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time        `bson:"updatedAt" json:"updatedAt"`
}

// BusinessView is a business annotated for a particular caller.
type BusinessView struct {
	Business
	Owner          *UserSummary `json:"owner,omitempty"`
	IsFollowed     bool         `json:"isFollowed"`
	FollowersCount int64        `json:"followersCount"`
}

// BusinessInput is the body of POST /api/business.
type BusinessInput struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Category     string           `json:"category"`
	Images       []string         `json:"images"`
	Contact      Contact          `json:"contact"`
	Location     Location         `json:"location"`
	OpeningHours map[string]Hours `json:"openingHours"`
}

// BusinessPatch is a merge-patch: nil fields keep their stored value.
type BusinessPatch struct {
	Name         *string           `json:"name"`
	Description  *string           `json:"description"`
	Category     *string           `json:"category"`
	Images       *[]string         `json:"images"`
	Contact      *Contact          `json:"contact"`
	Location     *Location         `json:"location"`
	OpeningHours *map[string]Hours `json:"openingHours"`
	IsVerified   *bool             `json:"isVerified"`
	IsFeatured   *bool             `json:"isFeatured"`
}
