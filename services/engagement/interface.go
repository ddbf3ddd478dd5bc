package engagement

import (
	"context"
	"time"

	businessRepo "localconnect/database/repository/business"
	followRepo "localconnect/database/repository/follow"
	reviewRepo "localconnect/database/repository/review"
	userRepo "localconnect/database/repository/user"
	visitRepo "localconnect/database/repository/visit"
	"localconnect/models"

	"go.uber.org/zap"
)

// EngagementService maintains reviews, follows and visits along with the
// rating aggregate stored on each business.
type EngagementService interface {
	SubmitReview(ctx context.Context, caller *models.Caller, businessID string, input models.ReviewInput) (*models.Review, error)
	UpdateReview(ctx context.Context, caller *models.Caller, reviewID string, patch models.ReviewPatch) (*models.Review, error)
	DeleteReview(ctx context.Context, caller *models.Caller, reviewID string) error
	ListReviews(ctx context.Context, businessID string) ([]models.ReviewView, error)

	FollowBusiness(ctx context.Context, caller *models.Caller, businessID string) (*models.Follow, error)
	UnfollowBusiness(ctx context.Context, caller *models.Caller, businessID string) error
	ListFollowedBusinesses(ctx context.Context, caller *models.Caller) ([]models.Business, error)
	ListFollowers(ctx context.Context, businessID string) ([]models.FollowerView, error)

	RecordVisit(ctx context.Context, caller *models.Caller, businessID string) (*models.Visit, error)
}

// DefaultEngagementService is the production implementation.
type DefaultEngagementService struct {
	Businesses businessRepo.BusinessRepository
	Reviews    reviewRepo.ReviewRepository
	Follows    followRepo.FollowRepository
	Visits     visitRepo.VisitRepository
	Users      userRepo.UserRepository
	Locker     RatingLocker
	Logger     *zap.Logger
	Now        func() time.Time
}

func (s *DefaultEngagementService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultEngagementService) locker() RatingLocker {
	if s.Locker == nil {
		return NoopLocker{}
	}
	return s.Locker
}
