package models

import "time"

// User represents a platform account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	ProfilePic   string    `bson:"profilePic,omitempty" json:"profilePic,omitempty"`
	Role         Role      `bson:"role" json:"role"`
	Favorites    []string  `bson:"favorites" json:"favorites"`
	HomeLocation *GeoPoint `bson:"homeLocation,omitempty" json:"homeLocation,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserSummary is the minimal-disclosure projection of a user.
type UserSummary struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// Summary projects u onto its public fields.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Name     string    `json:"name" binding:"required"`
	Email    string    `json:"email" binding:"required,email"`
	Password string    `json:"password" binding:"required,min=6,max=72"`
	Role     Role      `json:"role"`
	Location *GeoPoint `json:"location"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
