package followRepo

import (
	"context"

	"localconnect/models"
)

// FollowRepository defines methods for follow data access.
type FollowRepository interface {
	// Create inserts a follow. An existing (user, business) pair yields repository.ErrDuplicateKey.
	Create(ctx context.Context, follow *models.Follow) error
	// Delete removes the (user, business) follow, or returns repository.ErrNotFound.
	Delete(ctx context.Context, userID, businessID string) error
	// Exists reports whether the user follows the business.
	Exists(ctx context.Context, userID, businessID string) (bool, error)
	// ListByUser returns the user's follows, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Follow, error)
	// ListByBusiness returns the business's follows, newest first.
	ListByBusiness(ctx context.Context, businessID string) ([]models.Follow, error)
	// CountByBusiness returns the follower count of each business in ids; absent means zero.
	CountByBusiness(ctx context.Context, businessIDs []string) (map[string]int64, error)
	// FollowedAmong returns the subset of businessIDs the user follows.
	FollowedAmong(ctx context.Context, userID string, businessIDs []string) (map[string]bool, error)
	Count(ctx context.Context) (int64, error)
	// TopFollowed returns the n businesses with the most followers. Follows of
	// deleted businesses are ignored.
	TopFollowed(ctx context.Context, n int) ([]models.FollowedBusiness, error)
}
