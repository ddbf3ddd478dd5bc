package category

import (
	"context"
	"strings"

	categoryRepo "localconnect/database/repository/category"
	"localconnect/models"
	"localconnect/services"
	"localconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, caller *models.Caller, input models.CategoryInput) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// DefaultCategoryService is the production implementation.
type DefaultCategoryService struct {
	Repo   categoryRepo.CategoryRepository
	Logger *zap.Logger
}

func (s *DefaultCategoryService) CreateCategory(ctx context.Context, caller *models.Caller, input models.CategoryInput) (*models.Category, error) {
	if !caller.IsAdmin() {
		return nil, utils.Forbidden("Admin access required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, utils.BadRequest("Name is required")
	}
	c := &models.Category{ID: uuid.NewString(), Name: name, Icon: input.Icon}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, services.StoreError(err, "", "Category already exists")
	}
	s.Logger.Info("category created", zap.String("name", name))
	return c, nil
}

func (s *DefaultCategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.Repo.List(ctx)
	if err != nil {
		return nil, services.StoreError(err, "", "")
	}
	return categories, nil
}
