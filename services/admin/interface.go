package admin

import (
	"context"

	businessRepo "localconnect/database/repository/business"
	followRepo "localconnect/database/repository/follow"
	reviewRepo "localconnect/database/repository/review"
	userRepo "localconnect/database/repository/user"
	"localconnect/models"

	"go.uber.org/zap"
)

type AdminService interface {
	GetAnalytics(ctx context.Context, caller *models.Caller) (*models.AnalyticsReport, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Users      userRepo.UserRepository
	Businesses businessRepo.BusinessRepository
	Reviews    reviewRepo.ReviewRepository
	Follows    followRepo.FollowRepository
	Logger     *zap.Logger
}
