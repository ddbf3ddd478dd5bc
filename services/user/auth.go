package user

import (
	"context"
	"errors"
	"strings"

	"localconnect/database/repository"
	"localconnect/models"
	"localconnect/services"
	"localconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates an account and signs a token for it.
func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, utils.BadRequest("name, email and password are required")
	}
	if len(req.Password) > utils.MaxPasswordBytes {
		return nil, utils.BadRequest("password must be at most 72 bytes")
	}
	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if !role.Valid() {
		return nil, utils.BadRequest("role must be customer, businessOwner or admin")
	}
	if role == models.RoleAdmin && !s.AllowAdminSignup {
		return nil, utils.Forbidden("Admin accounts cannot be self-registered")
	}
	if req.Location != nil {
		c := req.Location.Coordinates
		if len(c) != 2 || !utils.ValidCoordinates(c[0], c[1]) {
			return nil, utils.BadRequest("location.coordinates must be [lng, lat]")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.Internal("failed to hash password", err)
	}

	now := s.now()
	u := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Favorites:    []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Location != nil {
		loc := models.NewGeoPoint(req.Location.Coordinates[0], req.Location.Coordinates[1])
		u.HomeLocation = &loc
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, services.StoreError(err, "", "User already exists")
	}

	token, err := s.Tokens.GenerateToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, utils.Internal("failed to generate token", err)
	}
	s.Logger.Info("user registered", zap.String("userId", u.ID), zap.String("role", string(u.Role)))
	return &models.AuthResponse{Token: token, User: u}, nil
}

// Login verifies the password and signs a fresh token.
func (s *DefaultUserService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, utils.BadRequest("email and password are required")
	}
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, utils.Unauthorized("Invalid email or password")
		}
		return nil, services.StoreError(err, "", "")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, utils.Unauthorized("Invalid email or password")
	}

	token, err := s.Tokens.GenerateToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, utils.Internal("failed to generate token", err)
	}
	return &models.AuthResponse{Token: token, User: u}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
