package business

import (
	"context"
	"math"
	"testing"
	"time"

	"localconnect/database"
	"localconnect/database/repository/memstore"
	"localconnect/models"
	"localconnect/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const centerLng, centerLat = 77.5946, 12.9716

var (
	owner    = &models.Caller{ID: "owner", Role: models.RoleBusinessOwner}
	rival    = &models.Caller{ID: "rival", Role: models.RoleBusinessOwner}
	customer = &models.Caller{ID: "customer", Role: models.RoleCustomer}
	admin    = &models.Caller{ID: "admin", Role: models.RoleAdmin}
)

func newService(t *testing.T) (*DefaultDirectoryService, database.Stores) {
	t.Helper()
	stores := memstore.New().Stores()
	ctx := context.Background()
	for _, c := range []*models.Caller{owner, rival, customer, admin} {
		require.NoError(t, stores.Users.Create(ctx, &models.User{ID: c.ID, Name: c.ID, Email: c.ID + "@example.com", Role: c.Role}))
	}
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &DefaultDirectoryService{
		Businesses: stores.Businesses,
		Follows:    stores.Follows,
		Users:      stores.Users,
		Logger:     zap.NewNop(),
		Now: func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		},
	}, stores
}

// northOfCenter places a business km kilometres due north of the center point.
func northOfCenter(name string, km float64) models.BusinessInput {
	lat := centerLat + km*180/(utils.EarthRadiusKm*math.Pi)
	return models.BusinessInput{
		Name:     name,
		Category: "cafe",
		Location: models.Location{Coordinates: []float64{centerLng, lat}, City: "Bengaluru"},
	}
}

func create(t *testing.T, svc *DefaultDirectoryService, caller *models.Caller, input models.BusinessInput) *models.Business {
	t.Helper()
	b, err := svc.CreateBusiness(context.Background(), caller, input)
	require.NoError(t, err)
	return b
}

func TestFindNearby_RadiusBoundary(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	create(t, svc, owner, northOfCenter("at center", 0))
	create(t, svc, owner, northOfCenter("just inside", 4.99))
	create(t, svc, owner, northOfCenter("just outside", 5.1))
	create(t, svc, owner, northOfCenter("far away", 50))

	views, err := svc.FindNearby(ctx, centerLng, centerLat, 5, nil)
	require.NoError(t, err)
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.Name
		assert.LessOrEqual(t, utils.GreatCircleKm(centerLng, centerLat, v.Location.Coordinates[0], v.Location.Coordinates[1]), 5.0)
	}
	assert.ElementsMatch(t, []string{"at center", "just inside"}, names)

	wider, err := svc.FindNearby(ctx, centerLng, centerLat, 6, nil)
	require.NoError(t, err)
	assert.Len(t, wider, 3)
}

func TestFindNearby_InvalidInput(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.FindNearby(ctx, 200, 0, 5, nil)
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))
	_, err = svc.FindNearby(ctx, 0, 95, 5, nil)
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))
	_, err = svc.FindNearby(ctx, 0, 0, 0, nil)
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))
	_, err = svc.FindNearby(ctx, 0, 0, math.NaN(), nil)
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))
	_, err = svc.FindNearby(ctx, 0, 0, math.Inf(1), nil)
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))
}

func TestListBusinesses_AnonymousIsNeverFollowing(t *testing.T) {
	svc, stores := newService(t)
	ctx := context.Background()

	b1 := create(t, svc, owner, northOfCenter("one", 1))
	create(t, svc, owner, northOfCenter("two", 2))
	require.NoError(t, stores.Follows.Create(ctx, &models.Follow{ID: "f1", UserID: customer.ID, BusinessID: b1.ID}))

	views, err := svc.ListBusinesses(ctx, nil, models.Page{})
	require.NoError(t, err)
	require.Len(t, views, 2)
	for _, v := range views {
		assert.False(t, v.IsFollowed)
	}
	assert.Equal(t, int64(1), views[0].FollowersCount)

	views, err = svc.ListBusinesses(ctx, customer, models.Page{})
	require.NoError(t, err)
	assert.True(t, views[0].IsFollowed)
	assert.False(t, views[1].IsFollowed)
}

func TestListBusinesses_Paging(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	for _, name := range []string{"a", "b", "c"} {
		create(t, svc, owner, northOfCenter(name, 1))
	}

	page, err := svc.ListBusinesses(ctx, nil, models.Page{Page: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "c", page[0].Name)

	_, err = svc.ListBusinesses(ctx, nil, models.Page{Page: -1, Limit: 2})
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))

	_, err = svc.ListBusinesses(ctx, nil, models.Page{Page: math.MaxInt / 2, Limit: 3})
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))

	page, err = svc.ListBusinesses(ctx, nil, models.Page{Page: 1000, Limit: 3})
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestGetBusiness_Annotated(t *testing.T) {
	svc, stores := newService(t)
	ctx := context.Background()
	b := create(t, svc, owner, northOfCenter("one", 1))
	require.NoError(t, stores.Follows.Create(ctx, &models.Follow{ID: "f1", UserID: customer.ID, BusinessID: b.ID}))
	require.NoError(t, stores.Follows.Create(ctx, &models.Follow{ID: "f2", UserID: admin.ID, BusinessID: b.ID}))

	view, err := svc.GetBusiness(ctx, b.ID, customer)
	require.NoError(t, err)
	assert.True(t, view.IsFollowed)
	assert.Equal(t, int64(2), view.FollowersCount)
	require.NotNil(t, view.Owner)
	assert.Equal(t, "owner@example.com", view.Owner.Email)

	_, err = svc.GetBusiness(ctx, "missing", nil)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestCreateBusiness(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateBusiness(ctx, nil, northOfCenter("x", 1))
	assert.Equal(t, utils.KindUnauthorized, utils.KindOf(err))
	_, err = svc.CreateBusiness(ctx, customer, northOfCenter("x", 1))
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
	_, err = svc.CreateBusiness(ctx, owner, models.BusinessInput{Name: "x", Category: "cafe"})
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))

	input := northOfCenter("  Corner Cafe ", 1)
	input.OpeningHours = map[string]models.Hours{"funday": {Open: "09:00", Close: "17:00"}}
	_, err = svc.CreateBusiness(ctx, owner, input)
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))

	input.OpeningHours = map[string]models.Hours{"mon": {Open: "09:00", Close: "17:00"}}
	b, err := svc.CreateBusiness(ctx, owner, input)
	require.NoError(t, err)
	assert.Equal(t, "Corner Cafe", b.Name)
	assert.Equal(t, owner.ID, b.OwnerID)
	assert.Equal(t, "Point", b.Location.Type)
	assert.Zero(t, b.NumReviews)
	assert.Equal(t, []string{}, b.Images)
}

func TestUpdateBusiness(t *testing.T) {
	svc, stores := newService(t)
	ctx := context.Background()
	b := create(t, svc, owner, northOfCenter("one", 1))
	require.NoError(t, stores.Businesses.SetRating(ctx, b.ID, 4, 3))

	name := "Renamed"
	_, err := svc.UpdateBusiness(ctx, rival, b.ID, models.BusinessPatch{Name: &name})
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))

	verified := true
	_, err = svc.UpdateBusiness(ctx, owner, b.ID, models.BusinessPatch{IsVerified: &verified})
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))

	updated, err := svc.UpdateBusiness(ctx, owner, b.ID, models.BusinessPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "cafe", updated.Category)

	_, err = svc.UpdateBusiness(ctx, admin, b.ID, models.BusinessPatch{IsVerified: &verified})
	require.NoError(t, err)

	stored, err := stores.Businesses.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Name)
	assert.True(t, stored.IsVerified)
	assert.Equal(t, 4.0, stored.AverageRating)
	assert.Equal(t, 3, stored.NumReviews)
}

func TestDeleteBusiness_NonOwnerForbidden(t *testing.T) {
	svc, stores := newService(t)
	ctx := context.Background()
	b := create(t, svc, owner, northOfCenter("one", 1))

	for _, caller := range []*models.Caller{rival, customer} {
		err := svc.DeleteBusiness(ctx, caller, b.ID)
		assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
	}
	_, err := stores.Businesses.GetByID(ctx, b.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBusiness(ctx, owner, b.ID))
	_, err = stores.Businesses.GetByID(ctx, b.ID)
	assert.Error(t, err)

	err = svc.DeleteBusiness(ctx, admin, b.ID)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestDeleteBusiness_AdminMayDeleteAny(t *testing.T) {
	svc, _ := newService(t)
	b := create(t, svc, owner, northOfCenter("one", 1))
	require.NoError(t, svc.DeleteBusiness(context.Background(), admin, b.ID))
}
