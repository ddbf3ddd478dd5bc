package offerRepo

import (
	"context"
	"time"

	"localconnect/models"
)

// OfferRepository defines methods for offer data access.
type OfferRepository interface {
	Create(ctx context.Context, offer *models.Offer) error
	GetByID(ctx context.Context, id string) (*models.Offer, error)
	// ListByBusiness returns a business's offers, newest first. A non-nil
	// isActive filters on the stored flag.
	ListByBusiness(ctx context.Context, businessID string, isActive *bool) ([]models.Offer, error)
	// List returns all offers newest first. A non-nil activeAt keeps only offers
	// that are switched on and valid at that instant.
	List(ctx context.Context, activeAt *time.Time) ([]models.Offer, error)
	Update(ctx context.Context, offer *models.Offer) error
	Delete(ctx context.Context, id string) error
}
