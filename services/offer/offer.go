package offer

import (
	"context"
	"strings"
	"time"

	businessRepo "localconnect/database/repository/business"
	offerRepo "localconnect/database/repository/offer"
	"localconnect/models"
	"localconnect/services"
	"localconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OfferService interface {
	CreateOffer(ctx context.Context, caller *models.Caller, businessID string, input models.OfferInput) (*models.OfferView, error)
	ListBusinessOffers(ctx context.Context, businessID string, isActive *bool) ([]models.OfferView, error)
	ListOffers(ctx context.Context, activeOnly bool) ([]models.OfferView, error)
	UpdateOffer(ctx context.Context, caller *models.Caller, id string, patch models.OfferPatch) (*models.OfferView, error)
	DeleteOffer(ctx context.Context, caller *models.Caller, id string) error
}

// DefaultOfferService is the production implementation.
type DefaultOfferService struct {
	Offers     offerRepo.OfferRepository
	Businesses businessRepo.BusinessRepository
	Logger     *zap.Logger
	Now        func() time.Time
}

func (s *DefaultOfferService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultOfferService) CreateOffer(ctx context.Context, caller *models.Caller, businessID string, input models.OfferInput) (*models.OfferView, error) {
	if caller == nil {
		return nil, utils.Unauthorized("Not authorized")
	}
	b, err := s.Businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, services.StoreError(err, "Business not found", "")
	}
	if b.OwnerID != caller.ID && !caller.IsAdmin() {
		return nil, utils.Forbidden("Not authorized to create offer")
	}

	o := &models.Offer{
		ID:              uuid.NewString(),
		BusinessID:      businessID,
		Title:           strings.TrimSpace(input.Title),
		Description:     input.Description,
		DiscountPercent: input.DiscountPercent,
		ValidFrom:       input.ValidFrom,
		ValidTo:         input.ValidTo,
		IsActive:        true,
		CreatedAt:       s.now(),
	}
	if input.IsActive != nil {
		o.IsActive = *input.IsActive
	}
	if err := validateOffer(o); err != nil {
		return nil, err
	}
	if err := s.Offers.Create(ctx, o); err != nil {
		return nil, services.StoreError(err, "", "")
	}
	s.Logger.Info("offer created", zap.String("offerId", o.ID), zap.String("businessId", businessID))
	return &models.OfferView{Offer: *o, Business: project(b)}, nil
}

// ListBusinessOffers filters on the stored isActive flag only, ignoring the validity window.
func (s *DefaultOfferService) ListBusinessOffers(ctx context.Context, businessID string, isActive *bool) ([]models.OfferView, error) {
	offers, err := s.Offers.ListByBusiness(ctx, businessID, isActive)
	if err != nil {
		return nil, services.StoreError(err, "", "")
	}
	return s.withBusinesses(ctx, offers)
}

// ListOffers returns every offer, or with activeOnly those active right now.
func (s *DefaultOfferService) ListOffers(ctx context.Context, activeOnly bool) ([]models.OfferView, error) {
	var at *time.Time
	if activeOnly {
		now := s.now()
		at = &now
	}
	offers, err := s.Offers.List(ctx, at)
	if err != nil {
		return nil, services.StoreError(err, "", "")
	}
	return s.withBusinesses(ctx, offers)
}

func (s *DefaultOfferService) UpdateOffer(ctx context.Context, caller *models.Caller, id string, patch models.OfferPatch) (*models.OfferView, error) {
	o, b, err := s.authorize(ctx, caller, id, "Not authorized to update offer")
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		o.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		o.Description = *patch.Description
	}
	if patch.DiscountPercent != nil {
		o.DiscountPercent = *patch.DiscountPercent
	}
	if patch.ValidFrom != nil {
		o.ValidFrom = *patch.ValidFrom
	}
	if patch.ValidTo != nil {
		o.ValidTo = *patch.ValidTo
	}
	if patch.IsActive != nil {
		o.IsActive = *patch.IsActive
	}
	if err := validateOffer(o); err != nil {
		return nil, err
	}
	if err := s.Offers.Update(ctx, o); err != nil {
		return nil, services.StoreError(err, "Offer not found", "")
	}
	return &models.OfferView{Offer: *o, Business: project(b)}, nil
}

func (s *DefaultOfferService) DeleteOffer(ctx context.Context, caller *models.Caller, id string) error {
	if _, _, err := s.authorize(ctx, caller, id, "Not authorized to delete offer"); err != nil {
		return err
	}
	if err := s.Offers.Delete(ctx, id); err != nil {
		return services.StoreError(err, "Offer not found", "")
	}
	return nil
}

// authorize loads the offer and its business. Offers of a deleted business can only be managed by admins.
func (s *DefaultOfferService) authorize(ctx context.Context, caller *models.Caller, id, denied string) (*models.Offer, *models.Business, error) {
	if caller == nil {
		return nil, nil, utils.Unauthorized("Not authorized")
	}
	o, err := s.Offers.GetByID(ctx, id)
	if err != nil {
		return nil, nil, services.StoreError(err, "Offer not found", "")
	}
	found, err := s.Businesses.GetByIDs(ctx, []string{o.BusinessID})
	if err != nil {
		return nil, nil, services.StoreError(err, "", "")
	}
	b, ok := found[o.BusinessID]
	if !caller.IsAdmin() && (!ok || b.OwnerID != caller.ID) {
		return nil, nil, utils.Forbidden(denied)
	}
	if !ok {
		return o, nil, nil
	}
	return o, &b, nil
}

func (s *DefaultOfferService) withBusinesses(ctx context.Context, offers []models.Offer) ([]models.OfferView, error) {
	ids := make([]string, 0, len(offers))
	for _, o := range offers {
		ids = append(ids, o.BusinessID)
	}
	found, err := s.Businesses.GetByIDs(ctx, ids)
	if err != nil {
		return nil, services.StoreError(err, "", "")
	}
	views := make([]models.OfferView, len(offers))
	for i, o := range offers {
		views[i] = models.OfferView{Offer: o}
		if b, ok := found[o.BusinessID]; ok {
			views[i].Business = project(&b)
		}
	}
	return views, nil
}

func project(b *models.Business) *models.OfferBusiness {
	if b == nil {
		return nil
	}
	return &models.OfferBusiness{ID: b.ID, Name: b.Name, Category: b.Category, Images: b.Images}
}

func validateOffer(o *models.Offer) error {
	switch {
	case o.Title == "":
		return utils.BadRequest("title is required")
	case o.ValidFrom.IsZero() || o.ValidTo.IsZero():
		return utils.BadRequest("validFrom and validTo are required")
	case o.ValidTo.Before(o.ValidFrom):
		return utils.BadRequest("validTo must not be before validFrom")
	case o.DiscountPercent < 0 || o.DiscountPercent > 100:
		return utils.BadRequest("discountPercent must be between 0 and 100")
	}
	return nil
}
