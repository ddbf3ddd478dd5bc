package models

// Category is a named business category.
type Category struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Icon string `bson:"icon,omitempty" json:"icon,omitempty"`
}

// CategoryInput is the body of POST /api/category.
type CategoryInput struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}
