package business

import (
	"context"
	"strings"

	"localconnect/models"
	"localconnect/services"
	"localconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultDirectoryService) CreateBusiness(ctx context.Context, caller *models.Caller, input models.BusinessInput) (*models.Business, error) {
	if caller == nil {
		return nil, utils.Unauthorized("Not authorized")
	}
	if caller.Role != models.RoleBusinessOwner && caller.Role != models.RoleAdmin {
		return nil, utils.Forbidden("Only business owners can create businesses")
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Category) == "" {
		return nil, utils.BadRequest("name and category are required")
	}
	if err := validateLocation(input.Location); err != nil {
		return nil, err
	}
	if err := validateHours(input.OpeningHours); err != nil {
		return nil, err
	}

	now := s.now()
	b := &models.Business{
		ID:           uuid.NewString(),
		OwnerID:      caller.ID,
		Name:         strings.TrimSpace(input.Name),
		Description:  input.Description,
		Category:     strings.TrimSpace(input.Category),
		Images:       input.Images,
		Contact:      input.Contact,
		Location:     input.Location,
		OpeningHours: input.OpeningHours,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if b.Images == nil {
		b.Images = []string{}
	}
	b.Location.Type = "Point"
	if err := s.Businesses.Create(ctx, b); err != nil {
		return nil, services.StoreError(err, "", "")
	}
	s.Logger.Info("business created", zap.String("businessId", b.ID), zap.String("ownerId", b.OwnerID))
	return b, nil
}

// UpdateBusiness applies a merge-patch. Ownership and derived rating fields are never patched.
func (s *DefaultDirectoryService) UpdateBusiness(ctx context.Context, caller *models.Caller, id string, patch models.BusinessPatch) (*models.Business, error) {
	b, err := s.authorize(ctx, caller, id, "Not authorized to update this business")
	if err != nil {
		return nil, err
	}
	if (patch.IsVerified != nil || patch.IsFeatured != nil) && !caller.IsAdmin() {
		return nil, utils.Forbidden("Only admins can change verification or featured status")
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, utils.BadRequest("name must not be empty")
		}
		b.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		b.Description = *patch.Description
	}
	if patch.Category != nil {
		if strings.TrimSpace(*patch.Category) == "" {
			return nil, utils.BadRequest("category must not be empty")
		}
		b.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Images != nil {
		b.Images = *patch.Images
	}
	if patch.Contact != nil {
		b.Contact = *patch.Contact
	}
	if patch.Location != nil {
		if err := validateLocation(*patch.Location); err != nil {
			return nil, err
		}
		b.Location = *patch.Location
		b.Location.Type = "Point"
	}
	if patch.OpeningHours != nil {
		if err := validateHours(*patch.OpeningHours); err != nil {
			return nil, err
		}
		b.OpeningHours = *patch.OpeningHours
	}
	if patch.IsVerified != nil {
		b.IsVerified = *patch.IsVerified
	}
	if patch.IsFeatured != nil {
		b.IsFeatured = *patch.IsFeatured
	}
	b.UpdatedAt = s.now()

	if err := s.Businesses.Update(ctx, b); err != nil {
		return nil, services.StoreError(err, "Business not found", "")
	}
	return b, nil
}

// DeleteBusiness removes the business only. Its reviews, follows, offers and visits remain.
func (s *DefaultDirectoryService) DeleteBusiness(ctx context.Context, caller *models.Caller, id string) error {
	if _, err := s.authorize(ctx, caller, id, "Not authorized to delete this business"); err != nil {
		return err
	}
	if err := s.Businesses.Delete(ctx, id); err != nil {
		return services.StoreError(err, "Business not found", "")
	}
	s.Logger.Info("business deleted", zap.String("businessId", id), zap.String("by", caller.ID))
	return nil
}

// authorize loads the business and checks the caller owns it or is an admin.
func (s *DefaultDirectoryService) authorize(ctx context.Context, caller *models.Caller, id, denied string) (*models.Business, error) {
	if caller == nil {
		return nil, utils.Unauthorized("Not authorized")
	}
	b, err := s.Businesses.GetByID(ctx, id)
	if err != nil {
		return nil, services.StoreError(err, "Business not found", "")
	}
	if b.OwnerID != caller.ID && !caller.IsAdmin() {
		return nil, utils.Forbidden(denied)
	}
	return b, nil
}

func validateLocation(loc models.Location) error {
	if len(loc.Coordinates) != 2 {
		return utils.BadRequest("location.coordinates must be [lng, lat]")
	}
	if !utils.ValidCoordinates(loc.Coordinates[0], loc.Coordinates[1]) {
		return utils.BadRequest("location.coordinates are out of range")
	}
	if loc.Type != "" && loc.Type != "Point" {
		return utils.BadRequest("location.type must be Point")
	}
	return nil
}

func validateHours(hours map[string]models.Hours) error {
	for day := range hours {
		known := false
		for _, d := range models.Weekdays {
			if d == day {
				known = true
				break
			}
		}
		if !known {
			return utils.BadRequest("openingHours keys must be weekday abbreviations (mon..sun)")
		}
	}
	return nil
}
