package user

import (
	"context"
	"time"

	businessRepo "localconnect/database/repository/business"
	userRepo "localconnect/database/repository/user"
	"localconnect/models"
	"localconnect/utils"

	"go.uber.org/zap"
)

type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, caller *models.Caller) (*models.User, error)
	AddFavorite(ctx context.Context, caller *models.Caller, businessID string) (*models.User, error)
	RemoveFavorite(ctx context.Context, caller *models.Caller, businessID string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo             userRepo.UserRepository
	Businesses       businessRepo.BusinessRepository
	Tokens           *utils.TokenIssuer
	AllowAdminSignup bool
	Logger           *zap.Logger
	Now              func() time.Time
}

func (s *DefaultUserService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
