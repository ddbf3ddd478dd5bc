package memstore

import (
	"context"
	"math"
	"testing"
	"time"

	"localconnect/database/repository"
	"localconnect/models"
	"localconnect/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func business(id string, lng, lat float64, created time.Time) *models.Business {
	return &models.Business{
		ID:        id,
		OwnerID:   "owner",
		Name:      "Business " + id,
		Category:  "cafe",
		Images:    []string{},
		Location:  models.Location{Type: "Point", Coordinates: []float64{lng, lat}},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestUserRepo_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	repo := New().Stores().Users

	require.NoError(t, repo.Create(ctx, &models.User{ID: "u1", Email: "a@example.com", CreatedAt: base}))
	err := repo.Create(ctx, &models.User{ID: "u2", Email: "a@example.com", CreatedAt: base})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepo_FavoritesAreASet(t *testing.T) {
	ctx := context.Background()
	repo := New().Stores().Users
	require.NoError(t, repo.Create(ctx, &models.User{ID: "u1", Email: "a@example.com"}))

	require.NoError(t, repo.AddFavorite(ctx, "u1", "b1"))
	require.NoError(t, repo.AddFavorite(ctx, "u1", "b1"))
	require.NoError(t, repo.AddFavorite(ctx, "u1", "b2"))
	u, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b2"}, u.Favorites)

	require.NoError(t, repo.RemoveFavorite(ctx, "u1", "b1"))
	require.NoError(t, repo.RemoveFavorite(ctx, "u1", "b1"))
	u, err = repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b2"}, u.Favorites)

	assert.ErrorIs(t, repo.AddFavorite(ctx, "nobody", "b1"), repository.ErrNotFound)
}

func TestUserRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := New().Stores().Users
	require.NoError(t, repo.Create(ctx, &models.User{ID: "u1", Email: "a@example.com", Favorites: []string{"b1"}}))

	u, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	u.Favorites[0] = "mutated"
	u.Name = "mutated"

	again, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, again.Favorites)
	assert.Empty(t, again.Name)
}

func TestBusinessRepo_FindWithinRadius(t *testing.T) {
	ctx := context.Background()
	repo := New().Stores().Businesses

	lng, lat := 77.5946, 12.9716
	perKm := 180 / (utils.EarthRadiusKm * math.Pi)
	require.NoError(t, repo.Create(ctx, business("center", lng, lat, base)))
	require.NoError(t, repo.Create(ctx, business("near", lng, lat+4.9*perKm, base.Add(time.Minute))))
	require.NoError(t, repo.Create(ctx, business("far", lng, lat+5.1*perKm, base.Add(2*time.Minute))))

	found, err := repo.FindWithinRadius(ctx, lng, lat, 5)
	require.NoError(t, err)
	ids := make([]string, len(found))
	for i, b := range found {
		ids[i] = b.ID
	}
	assert.Equal(t, []string{"center", "near"}, ids)
}

func TestBusinessRepo_ListPaging(t *testing.T) {
	ctx := context.Background()
	repo := New().Stores().Businesses
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, business(id, 0, 0, base.Add(time.Duration(i)*time.Hour))))
	}

	all, err := repo.List(ctx, models.Page{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)

	page, err := repo.List(ctx, models.Page{Page: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "c", page[0].ID)

	empty, err := repo.List(ctx, models.Page{Page: 5, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestBusinessRepo_UpdateKeepsDerivedFields(t *testing.T) {
	ctx := context.Background()
	repo := New().Stores().Businesses
	require.NoError(t, repo.Create(ctx, business("b1", 0, 0, base)))
	require.NoError(t, repo.SetRating(ctx, "b1", 4.5, 2))

	b, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	b.Name = "Renamed"
	b.AverageRating = 1
	b.NumReviews = 99
	b.OwnerID = "thief"
	require.NoError(t, repo.Update(ctx, b))

	got, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, 4.5, got.AverageRating)
	assert.Equal(t, 2, got.NumReviews)
	assert.Equal(t, "owner", got.OwnerID)

	assert.ErrorIs(t, repo.SetRating(ctx, "missing", 1, 1), repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "missing"), repository.ErrNotFound)
}

func TestReviewRepo_OnePerUserAndBusiness(t *testing.T) {
	ctx := context.Background()
	repo := New().Stores().Reviews

	require.NoError(t, repo.Create(ctx, &models.Review{ID: "r1", UserID: "u1", BusinessID: "b1", Rating: 4, CreatedAt: base}))
	err := repo.Create(ctx, &models.Review{ID: "r2", UserID: "u1", BusinessID: "b1", Rating: 2, CreatedAt: base})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)
	require.NoError(t, repo.Create(ctx, &models.Review{ID: "r3", UserID: "u2", BusinessID: "b1", Rating: 2, CreatedAt: base.Add(time.Second)}))

	list, err := repo.ListByBusiness(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "r3", list[0].ID)

	stats, err := repo.StatsByBusiness(ctx, []string{"b1", "b2"})
	require.NoError(t, err)
	assert.Equal(t, models.RatingStats{Count: 2, Average: 3}, stats["b1"])
	_, ok := stats["b2"]
	assert.False(t, ok)
}

func TestFollowRepo(t *testing.T) {
	ctx := context.Background()
	stores := New().Stores()
	require.NoError(t, stores.Businesses.Create(ctx, business("b1", 0, 0, base)))
	require.NoError(t, stores.Businesses.Create(ctx, business("b2", 0, 0, base)))

	require.NoError(t, stores.Follows.Create(ctx, &models.Follow{ID: "f1", UserID: "u1", BusinessID: "b1", CreatedAt: base}))
	assert.ErrorIs(t,
		stores.Follows.Create(ctx, &models.Follow{ID: "f2", UserID: "u1", BusinessID: "b1", CreatedAt: base}),
		repository.ErrDuplicateKey)
	require.NoError(t, stores.Follows.Create(ctx, &models.Follow{ID: "f3", UserID: "u2", BusinessID: "b1", CreatedAt: base}))
	require.NoError(t, stores.Follows.Create(ctx, &models.Follow{ID: "f4", UserID: "u1", BusinessID: "b2", CreatedAt: base.Add(time.Second)}))
	require.NoError(t, stores.Follows.Create(ctx, &models.Follow{ID: "f5", UserID: "u1", BusinessID: "gone", CreatedAt: base}))
	require.NoError(t, stores.Follows.Create(ctx, &models.Follow{ID: "f6", UserID: "u2", BusinessID: "gone", CreatedAt: base}))
	require.NoError(t, stores.Follows.Create(ctx, &models.Follow{ID: "f7", UserID: "u3", BusinessID: "gone", CreatedAt: base}))

	mine, err := stores.Follows.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, "b2", mine[0].BusinessID)

	counts, err := stores.Follows.CountByBusiness(ctx, []string{"b1", "b2", "b3"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts["b1"])
	assert.Equal(t, int64(1), counts["b2"])
	assert.Zero(t, counts["b3"])

	among, err := stores.Follows.FollowedAmong(ctx, "u2", []string{"b1", "b2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"b1": true}, among)

	top, err := stores.Follows.TopFollowed(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "b1", top[0].BusinessID)
	assert.Equal(t, int64(2), top[0].Followers)

	require.NoError(t, stores.Follows.Delete(ctx, "u1", "b1"))
	assert.ErrorIs(t, stores.Follows.Delete(ctx, "u1", "b1"), repository.ErrNotFound)
	exists, err := stores.Follows.Exists(ctx, "u1", "b1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestVisitRepo_CountByBusinessSince(t *testing.T) {
	ctx := context.Background()
	repo := New().Stores().Visits
	since := base.Add(-7 * 24 * time.Hour)

	add := func(businessID string, at time.Time) {
		require.NoError(t, repo.Create(ctx, &models.Visit{ID: businessID + at.String(), BusinessID: businessID, CreatedAt: at}))
	}
	add("b1", since)
	add("b1", base)
	add("b2", base)
	add("b2", since.Add(-time.Nanosecond))
	add("b3", base)
	add("b3", base)

	counts, err := repo.CountByBusinessSince(ctx, since, 10)
	require.NoError(t, err)
	assert.Equal(t, []models.VisitCount{
		{BusinessID: "b1", Count: 2},
		{BusinessID: "b3", Count: 2},
		{BusinessID: "b2", Count: 1},
	}, counts)

	top, err := repo.CountByBusinessSince(ctx, since, 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestOfferRepo_Filters(t *testing.T) {
	ctx := context.Background()
	repo := New().Stores().Offers

	current := &models.Offer{ID: "o1", BusinessID: "b1", Title: "now", IsActive: true,
		ValidFrom: base.Add(-time.Hour), ValidTo: base.Add(time.Hour), CreatedAt: base}
	expired := &models.Offer{ID: "o2", BusinessID: "b1", Title: "old", IsActive: true,
		ValidFrom: base.Add(-48 * time.Hour), ValidTo: base.Add(-24 * time.Hour), CreatedAt: base.Add(time.Second)}
	off := &models.Offer{ID: "o3", BusinessID: "b1", Title: "off", IsActive: false,
		ValidFrom: base.Add(-time.Hour), ValidTo: base.Add(time.Hour), CreatedAt: base.Add(2 * time.Second)}
	for _, o := range []*models.Offer{current, expired, off} {
		require.NoError(t, repo.Create(ctx, o))
	}

	active := true
	flagged, err := repo.ListByBusiness(ctx, "b1", &active)
	require.NoError(t, err)
	assert.Len(t, flagged, 2)

	at := base
	now, err := repo.List(ctx, &at)
	require.NoError(t, err)
	require.Len(t, now, 1)
	assert.Equal(t, "o1", now[0].ID)

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "o3", all[0].ID)
}

func TestCategoryRepo_UniqueName(t *testing.T) {
	ctx := context.Background()
	repo := New().Stores().Categories

	require.NoError(t, repo.Create(ctx, &models.Category{ID: "c1", Name: "Food"}))
	require.NoError(t, repo.Create(ctx, &models.Category{ID: "c2", Name: "Books"}))
	assert.ErrorIs(t, repo.Create(ctx, &models.Category{ID: "c3", Name: "Food"}), repository.ErrDuplicateKey)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Books", list[0].Name)
}
