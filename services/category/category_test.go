package category

import (
	"context"
	"testing"

	"localconnect/database/repository/memstore"
	"localconnect/models"
	"localconnect/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCategories(t *testing.T) {
	svc := &DefaultCategoryService{Repo: memstore.New().Stores().Categories, Logger: zap.NewNop()}
	ctx := context.Background()
	admin := &models.Caller{ID: "admin", Role: models.RoleAdmin}

	_, err := svc.CreateCategory(ctx, &models.Caller{ID: "u", Role: models.RoleCustomer}, models.CategoryInput{Name: "Food"})
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
	_, err = svc.CreateCategory(ctx, admin, models.CategoryInput{Name: "  "})
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))

	c, err := svc.CreateCategory(ctx, admin, models.CategoryInput{Name: " Food ", Icon: "utensils"})
	require.NoError(t, err)
	assert.Equal(t, "Food", c.Name)

	_, err = svc.CreateCategory(ctx, admin, models.CategoryInput{Name: "Food"})
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))

	_, err = svc.CreateCategory(ctx, admin, models.CategoryInput{Name: "Books"})
	require.NoError(t, err)

	list, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Books", list[0].Name)
}
