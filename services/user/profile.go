package user

import (
	"context"

	"localconnect/models"
	"localconnect/services"
	"localconnect/utils"
)

func (s *DefaultUserService) GetProfile(ctx context.Context, caller *models.Caller) (*models.User, error) {
	if caller == nil {
		return nil, utils.Unauthorized("Not authorized")
	}
	u, err := s.Repo.GetByID(ctx, caller.ID)
	if err != nil {
		return nil, services.StoreError(err, "User not found", "")
	}
	return u, nil
}

// AddFavorite adds an existing business to the caller's favorites.
func (s *DefaultUserService) AddFavorite(ctx context.Context, caller *models.Caller, businessID string) (*models.User, error) {
	if caller == nil {
		return nil, utils.Unauthorized("Not authorized")
	}
	if _, err := s.Businesses.GetByID(ctx, businessID); err != nil {
		return nil, services.StoreError(err, "Business not found", "")
	}
	if err := s.Repo.AddFavorite(ctx, caller.ID, businessID); err != nil {
		return nil, services.StoreError(err, "User not found", "")
	}
	return s.GetProfile(ctx, caller)
}

// RemoveFavorite is a no-op when the business is not a favorite.
func (s *DefaultUserService) RemoveFavorite(ctx context.Context, caller *models.Caller, businessID string) (*models.User, error) {
	if caller == nil {
		return nil, utils.Unauthorized("Not authorized")
	}
	if err := s.Repo.RemoveFavorite(ctx, caller.ID, businessID); err != nil {
		return nil, services.StoreError(err, "User not found", "")
	}
	return s.GetProfile(ctx, caller)
}
