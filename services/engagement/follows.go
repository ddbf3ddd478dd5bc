package engagement

import (
	"context"

	"localconnect/models"
	"localconnect/services"
	"localconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FollowBusiness subscribes the caller to an existing business.
func (s *DefaultEngagementService) FollowBusiness(ctx context.Context, caller *models.Caller, businessID string) (*models.Follow, error) {
	if caller == nil {
		return nil, utils.Unauthorized("Not authorized")
	}
	if _, err := s.Businesses.GetByID(ctx, businessID); err != nil {
		return nil, services.StoreError(err, "Business not found", "")
	}
	following, err := s.Follows.Exists(ctx, caller.ID, businessID)
	if err != nil {
		return nil, services.StoreError(err, "", "")
	}
	if following {
		return nil, utils.Conflict("Already following this business")
	}
	// The unique index still rejects a concurrent duplicate.
	follow := &models.Follow{
		ID:         uuid.NewString(),
		UserID:     caller.ID,
		BusinessID: businessID,
		CreatedAt:  s.now(),
	}
	if err := s.Follows.Create(ctx, follow); err != nil {
		return nil, services.StoreError(err, "", "Already following this business")
	}
	s.Logger.Debug("business followed", zap.String("userId", caller.ID), zap.String("businessId", businessID))
	return follow, nil
}

func (s *DefaultEngagementService) UnfollowBusiness(ctx context.Context, caller *models.Caller, businessID string) error {
	if caller == nil {
		return utils.Unauthorized("Not authorized")
	}
	if err := s.Follows.Delete(ctx, caller.ID, businessID); err != nil {
		return services.StoreError(err, "Not following this business", "")
	}
	return nil
}

// ListFollowedBusinesses resolves the caller's follows to businesses, newest follow
// first. Follows whose business has been deleted are skipped.
func (s *DefaultEngagementService) ListFollowedBusinesses(ctx context.Context, caller *models.Caller) ([]models.Business, error) {
	if caller == nil {
		return nil, utils.Unauthorized("Not authorized")
	}
	follows, err := s.Follows.ListByUser(ctx, caller.ID)
	if err != nil {
		return nil, services.StoreError(err, "", "")
	}
	ids := make([]string, len(follows))
	for i, f := range follows {
		ids[i] = f.BusinessID
	}
	found, err := s.Businesses.GetByIDs(ctx, ids)
	if err != nil {
		return nil, services.StoreError(err, "", "")
	}
	out := make([]models.Business, 0, len(follows))
	for _, id := range ids {
		if b, ok := found[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

// ListFollowers returns the name and email of every follower of a business.
func (s *DefaultEngagementService) ListFollowers(ctx context.Context, businessID string) ([]models.FollowerView, error) {
	follows, err := s.Follows.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, services.StoreError(err, "", "")
	}
	ids := make([]string, len(follows))
	for i, f := range follows {
		ids[i] = f.UserID
	}
	users, err := s.Users.GetSummaries(ctx, ids)
	if err != nil {
		return nil, services.StoreError(err, "", "")
	}
	out := make([]models.FollowerView, 0, len(follows))
	for _, id := range ids {
		if u, ok := users[id]; ok {
			out = append(out, models.FollowerView{User: u})
		}
	}
	return out, nil
}
