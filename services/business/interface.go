package business

import (
	"context"
	"time"

	businessRepo "localconnect/database/repository/business"
	followRepo "localconnect/database/repository/follow"
	userRepo "localconnect/database/repository/user"
	"localconnect/models"

	"go.uber.org/zap"
)

// DirectoryService answers business listing and discovery queries.
type DirectoryService interface {
	ListBusinesses(ctx context.Context, caller *models.Caller, page models.Page) ([]models.BusinessView, error)
	GetBusiness(ctx context.Context, id string, caller *models.Caller) (*models.BusinessView, error)
	FindNearby(ctx context.Context, lng, lat, radiusKm float64, caller *models.Caller) ([]models.BusinessView, error)
	CreateBusiness(ctx context.Context, caller *models.Caller, input models.BusinessInput) (*models.Business, error)
	UpdateBusiness(ctx context.Context, caller *models.Caller, id string, patch models.BusinessPatch) (*models.Business, error)
	DeleteBusiness(ctx context.Context, caller *models.Caller, id string) error
}

// DefaultDirectoryService is the production implementation.
type DefaultDirectoryService struct {
	Businesses businessRepo.BusinessRepository
	Follows    followRepo.FollowRepository
	Users      userRepo.UserRepository
	Logger     *zap.Logger
	Now        func() time.Time
}

func (s *DefaultDirectoryService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
