package reviewRepo

import (
	"context"

	"localconnect/models"
)

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a review. A second review by the same user for the same
	// business yields repository.ErrDuplicateKey.
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	GetByUserAndBusiness(ctx context.Context, userID, businessID string) (*models.Review, error)
	// Update writes rating, comment and updatedAt.
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id string) error
	// ListByBusiness returns every review of a business, newest first.
	ListByBusiness(ctx context.Context, businessID string) ([]models.Review, error)
	// StatsByBusiness returns count and mean rating for each business in ids that has reviews.
	StatsByBusiness(ctx context.Context, businessIDs []string) (map[string]models.RatingStats, error)
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, n int) ([]models.Review, error)
}
