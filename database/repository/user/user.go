package userRepo

import (
	"context"

	"localconnect/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user. A taken email yields repository.ErrDuplicateKey.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetSummaries returns the public projection of every user in ids that exists.
	GetSummaries(ctx context.Context, ids []string) (map[string]models.UserSummary, error)
	Count(ctx context.Context) (int64, error)
	// Recent returns the n most recently created users.
	Recent(ctx context.Context, n int) ([]models.User, error)
	// AddFavorite and RemoveFavorite treat favorites as a set.
	AddFavorite(ctx context.Context, userID, businessID string) error
	RemoveFavorite(ctx context.Context, userID, businessID string) error
}
