package engagement

import (
	"context"
	"fmt"
	"sync"
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

var (
	owner    = &models.Caller{ID: "owner", Role: models.RoleBusinessOwner}
	alice    = &models.Caller{ID: "alice", Role: models.RoleCustomer}
	bob      = &models.Caller{ID: "bob", Role: models.RoleCustomer}
	admin    = &models.Caller{ID: "admin", Role: models.RoleAdmin}
	baseTime = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
)

type fixture struct {
	svc    *DefaultEngagementService
	stores database.Stores
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	stores := memstore.New().Stores()
	ctx := context.Background()
	for _, c := range []*models.Caller{owner, alice, bob, admin} {
		require.NoError(t, stores.Users.Create(ctx, &models.User{
			ID: c.ID, Name: c.ID, Email: c.ID + "@example.com", Role: c.Role, CreatedAt: baseTime,
		}))
	}
	require.NoError(t, stores.Businesses.Create(ctx, &models.Business{
		ID: "b1", OwnerID: owner.ID, Name: "Corner Cafe", Category: "cafe",
		Location:  models.Location{Type: "Point", Coordinates: []float64{77.5946, 12.9716}},
		CreatedAt: baseTime,
	}))

	var mu sync.Mutex
	clock := baseTime
	return &fixture{
		stores: stores,
		svc: &DefaultEngagementService{
			Businesses: stores.Businesses,
			Reviews:    stores.Reviews,
			Follows:    stores.Follows,
			Visits:     stores.Visits,
			Users:      stores.Users,
			Locker:     NewLocalLocker(),
			Logger:     zap.NewNop(),
			Now: func() time.Time {
				mu.Lock()
				defer mu.Unlock()
				clock = clock.Add(time.Second)
				return clock
			},
		},
	}
}

func (f *fixture) rating(t *testing.T, businessID string) (float64, int) {
	t.Helper()
	b, err := f.stores.Businesses.GetByID(context.Background(), businessID)
	require.NoError(t, err)
	return b.AverageRating, b.NumReviews
}

func TestFoldRatings(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		avg     float64
		count   int
	}{
		{"empty", nil, 0, 0},
		{"single", []int{4}, 4, 1},
		{"pair", []int{4, 2}, 3, 2},
		{"fraction", []int{5, 4, 4}, 13.0 / 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := make([]models.Review, len(tt.ratings))
			for i, r := range tt.ratings {
				reviews[i] = models.Review{Rating: r}
			}
			avg, count := foldRatings(reviews)
			assert.InDelta(t, tt.avg, avg, 1e-9)
			assert.Equal(t, tt.count, count)
		})
	}
}

func TestSubmitReview_RecomputesAggregate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.SubmitReview(ctx, alice, "b1", models.ReviewInput{Rating: 4, Comment: "  good coffee "})
	require.NoError(t, err)
	avg, n := f.rating(t, "b1")
	assert.Equal(t, 4.0, avg)
	assert.Equal(t, 1, n)

	_, err = f.svc.SubmitReview(ctx, bob, "b1", models.ReviewInput{Rating: 2})
	require.NoError(t, err)
	avg, n = f.rating(t, "b1")
	assert.Equal(t, 3.0, avg)
	assert.Equal(t, 2, n)

	views, err := f.svc.ListReviews(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "bob", views[0].UserID)
	require.NotNil(t, views[1].User)
	assert.Equal(t, "alice@example.com", views[1].User.Email)
	assert.Equal(t, "good coffee", views[1].Comment)
}

func TestSubmitReview_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.SubmitReview(ctx, nil, "b1", models.ReviewInput{Rating: 3})
	assert.Equal(t, utils.KindUnauthorized, utils.KindOf(err))

	for _, r := range []int{0, 6, -1} {
		_, err = f.svc.SubmitReview(ctx, alice, "b1", models.ReviewInput{Rating: r})
		assert.Equal(t, utils.KindBadRequest, utils.KindOf(err), "rating %d", r)
	}

	_, err = f.svc.SubmitReview(ctx, alice, "missing", models.ReviewInput{Rating: 3})
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	_, err = f.svc.SubmitReview(ctx, alice, "b1", models.ReviewInput{Rating: 3})
	require.NoError(t, err)
	_, err = f.svc.SubmitReview(ctx, alice, "b1", models.ReviewInput{Rating: 5})
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))

	avg, n := f.rating(t, "b1")
	assert.Equal(t, 3.0, avg)
	assert.Equal(t, 1, n)
}

func TestUpdateReview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	review, err := f.svc.SubmitReview(ctx, alice, "b1", models.ReviewInput{Rating: 2})
	require.NoError(t, err)
	_, err = f.svc.SubmitReview(ctx, bob, "b1", models.ReviewInput{Rating: 4})
	require.NoError(t, err)

	five := 5
	_, err = f.svc.UpdateReview(ctx, bob, review.ID, models.ReviewPatch{Rating: &five})
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))

	zero := 0
	_, err = f.svc.UpdateReview(ctx, alice, review.ID, models.ReviewPatch{Rating: &zero})
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))

	comment := "changed my mind"
	updated, err := f.svc.UpdateReview(ctx, alice, review.ID, models.ReviewPatch{Rating: &five, Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, comment, updated.Comment)
	assert.True(t, updated.UpdatedAt.After(review.CreatedAt))

	avg, n := f.rating(t, "b1")
	assert.Equal(t, 4.5, avg)
	assert.Equal(t, 2, n)

	_, err = f.svc.UpdateReview(ctx, alice, "missing", models.ReviewPatch{Rating: &five})
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestDeleteReview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ra, err := f.svc.SubmitReview(ctx, alice, "b1", models.ReviewInput{Rating: 5})
	require.NoError(t, err)
	rb, err := f.svc.SubmitReview(ctx, bob, "b1", models.ReviewInput{Rating: 1})
	require.NoError(t, err)

	err = f.svc.DeleteReview(ctx, bob, ra.ID)
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))

	require.NoError(t, f.svc.DeleteReview(ctx, alice, ra.ID))
	avg, n := f.rating(t, "b1")
	assert.Equal(t, 1.0, avg)
	assert.Equal(t, 1, n)

	require.NoError(t, f.svc.DeleteReview(ctx, admin, rb.ID))
	avg, n = f.rating(t, "b1")
	assert.Equal(t, 0.0, avg)
	assert.Equal(t, 0, n)

	err = f.svc.DeleteReview(ctx, alice, ra.ID)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestDeleteReview_OrphanedByBusinessDeletion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	review, err := f.svc.SubmitReview(ctx, alice, "b1", models.ReviewInput{Rating: 5})
	require.NoError(t, err)
	require.NoError(t, f.stores.Businesses.Delete(ctx, "b1"))

	require.NoError(t, f.svc.DeleteReview(ctx, alice, review.ID))
	_, err = f.stores.Reviews.GetByID(ctx, review.ID)
	assert.Error(t, err)

	_, err = f.svc.ListReviews(ctx, "b1")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestSubmitReview_ConcurrentWritersConverge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const writers = 24
	sum := 0
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		id := fmt.Sprintf("user-%02d", i)
		rating := i%5 + 1
		sum += rating
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.SubmitReview(ctx, &models.Caller{ID: id, Role: models.RoleCustomer}, "b1", models.ReviewInput{Rating: rating})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	avg, n := f.rating(t, "b1")
	assert.Equal(t, writers, n)
	assert.InDelta(t, float64(sum)/writers, avg, 1e-9)
}

func TestFollowRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	follow, err := f.svc.FollowBusiness(ctx, alice, "b1")
	require.NoError(t, err)
	assert.Equal(t, "alice", follow.UserID)

	_, err = f.svc.FollowBusiness(ctx, alice, "b1")
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	assert.EqualError(t, err, "Already following this business")

	followed, err := f.svc.ListFollowedBusinesses(ctx, alice)
	require.NoError(t, err)
	require.Len(t, followed, 1)
	assert.Equal(t, "b1", followed[0].ID)

	followers, err := f.svc.ListFollowers(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, "alice@example.com", followers[0].User.Email)

	require.NoError(t, f.svc.UnfollowBusiness(ctx, alice, "b1"))
	followed, err = f.svc.ListFollowedBusinesses(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, followed)
}

func TestUnfollowBusiness_NotFollowing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.svc.UnfollowBusiness(ctx, bob, "b1")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	_, err = f.svc.FollowBusiness(ctx, bob, "b1")
	require.NoError(t, err)
	require.NoError(t, f.svc.UnfollowBusiness(ctx, bob, "b1"))
	err = f.svc.UnfollowBusiness(ctx, bob, "b1")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	exists, err := f.stores.Follows.Exists(ctx, "bob", "b1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFollowBusiness_ConcurrentDuplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const callers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.FollowBusiness(ctx, bob, "b1")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if utils.KindOf(err) == utils.KindConflict {
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, callers-1, conflicts)
	counts, err := f.stores.Follows.CountByBusiness(ctx, []string{"b1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts["b1"])
}

func TestFollowBusiness_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.FollowBusiness(ctx, nil, "b1")
	assert.Equal(t, utils.KindUnauthorized, utils.KindOf(err))
	_, err = f.svc.FollowBusiness(ctx, alice, "missing")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestListFollowedBusinesses_SkipsDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.stores.Businesses.Create(ctx, &models.Business{ID: "b2", OwnerID: owner.ID, Name: "Bakery", CreatedAt: baseTime}))

	_, err := f.svc.FollowBusiness(ctx, alice, "b1")
	require.NoError(t, err)
	_, err = f.svc.FollowBusiness(ctx, alice, "b2")
	require.NoError(t, err)
	require.NoError(t, f.stores.Businesses.Delete(ctx, "b1"))

	followed, err := f.svc.ListFollowedBusinesses(ctx, alice)
	require.NoError(t, err)
	require.Len(t, followed, 1)
	assert.Equal(t, "b2", followed[0].ID)
}

func TestRecordVisit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.RecordVisit(ctx, nil, "b1")
	assert.Equal(t, utils.KindUnauthorized, utils.KindOf(err))
	_, err = f.svc.RecordVisit(ctx, alice, "  ")
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))
	_, err = f.svc.RecordVisit(ctx, alice, "missing")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	visit, err := f.svc.RecordVisit(ctx, alice, "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", visit.BusinessID)
	assert.NotEmpty(t, visit.ID)

	counts, err := f.stores.Visits.CountByBusinessSince(ctx, baseTime, 10)
	require.NoError(t, err)
	assert.Equal(t, []models.VisitCount{{BusinessID: "b1", Count: 1}}, counts)
}
