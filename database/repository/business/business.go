package businessRepo

import (
	"context"

	"localconnect/models"
)

// BusinessRepository defines methods for business data access.
type BusinessRepository interface {
	Create(ctx context.Context, business *models.Business) error
	// GetByID retrieves a business by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Business, error)
	// GetByIDs returns the businesses in ids that exist, keyed by id.
	GetByIDs(ctx context.Context, ids []string) (map[string]models.Business, error)
	// List returns businesses oldest first. A zero page.Limit returns all of them.
	List(ctx context.Context, page models.Page) ([]models.Business, error)
	// FindWithinRadius returns businesses whose location lies in the spherical cap
	// of radiusKm around (lng, lat).
	FindWithinRadius(ctx context.Context, lng, lat, radiusKm float64) ([]models.Business, error)
	// Update replaces the mutable fields of an existing business.
	Update(ctx context.Context, business *models.Business) error
	// SetRating stores the derived rating fields.
	SetRating(ctx context.Context, id string, average float64, count int) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	// TopRated returns the n businesses with the highest stored averageRating.
	TopRated(ctx context.Context, n int) ([]models.Business, error)
	// Recent returns the n most recently created businesses.
	Recent(ctx context.Context, n int) ([]models.Business, error)
}
