package models

import "time"

// Follow is a subscription of a user to a business.
type Follow struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"userId" json:"userId"`
	BusinessID string    `bson:"businessId" json:"businessId"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// FollowerView is one entry of a business's follower list.
type FollowerView struct {
	User UserSummary `json:"user"`
}

// FollowedBusiness is a business ranked by its follower count.
type FollowedBusiness struct {
	BusinessID string `bson:"_id" json:"businessId"`
	Name       string `bson:"name" json:"name"`
	Followers  int64  `bson:"followers" json:"followers"`
}
