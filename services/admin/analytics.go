package admin

import (
	"context"

	"localconnect/models"
	"localconnect/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// GetAnalytics builds the dashboard snapshot. Every sub-query is independent
// and runs concurrently; the first failure cancels the rest.
func (s *DefaultAdminService) GetAnalytics(ctx context.Context, caller *models.Caller) (*models.AnalyticsReport, error) {
	if !caller.IsAdmin() {
		return nil, utils.Forbidden("Admin access required")
	}

	var (
		report       models.AnalyticsReport
		topRated     []models.Business
		recentUsers  []models.User
		recentBiz    []models.Business
		recentReview []models.Review
	)
	n := utils.AnalyticsTopN

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { report.Totals.Users, err = s.Users.Count(gctx); return })
	g.Go(func() (err error) { report.Totals.Businesses, err = s.Businesses.Count(gctx); return })
	g.Go(func() (err error) { report.Totals.Reviews, err = s.Reviews.Count(gctx); return })
	g.Go(func() (err error) { report.Totals.Follows, err = s.Follows.Count(gctx); return })
	g.Go(func() (err error) { report.MostFollowedBusinesses, err = s.Follows.TopFollowed(gctx, n); return })
	g.Go(func() (err error) { topRated, err = s.Businesses.TopRated(gctx, n); return })
	g.Go(func() (err error) { recentUsers, err = s.Users.Recent(gctx, n); return })
	g.Go(func() (err error) { recentBiz, err = s.Businesses.Recent(gctx, n); return })
	g.Go(func() (err error) { recentReview, err = s.Reviews.Recent(gctx, n); return })
	if err := g.Wait(); err != nil {
		return nil, utils.Internal("failed to compute analytics", err)
	}

	report.TopRatedBusinesses = make([]models.RatedBusiness, len(topRated))
	for i, b := range topRated {
		report.TopRatedBusinesses[i] = models.RatedBusiness{
			ID: b.ID, Name: b.Name, AverageRating: b.AverageRating, NumReviews: b.NumReviews,
		}
	}
	report.RecentUsers = make([]models.RecentUser, len(recentUsers))
	for i, u := range recentUsers {
		report.RecentUsers[i] = models.RecentUser{
			ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt,
		}
	}
	users, businesses, err := s.resolveRecentRefs(ctx, recentBiz, recentReview)
	if err != nil {
		return nil, utils.Internal("failed to compute analytics", err)
	}
	report.RecentBusinesses = make([]models.RecentBusiness, len(recentBiz))
	for i, b := range recentBiz {
		report.RecentBusinesses[i] = models.RecentBusiness{
			ID: b.ID, Name: b.Name, Category: b.Category, CreatedAt: b.CreatedAt,
		}
		if owner, ok := users[b.OwnerID]; ok {
			report.RecentBusinesses[i].Owner = &owner
		}
	}
	report.RecentReviews = make([]models.RecentReview, len(recentReview))
	for i, r := range recentReview {
		report.RecentReviews[i] = models.RecentReview{
			ID: r.ID, UserID: r.UserID, BusinessID: r.BusinessID, Rating: r.Rating, CreatedAt: r.CreatedAt,
		}
		if author, ok := users[r.UserID]; ok {
			report.RecentReviews[i].User = &author
		}
		if b, ok := businesses[r.BusinessID]; ok {
			report.RecentReviews[i].Business = &models.BusinessRef{ID: b.ID, Name: b.Name}
		}
	}
	if report.MostFollowedBusinesses == nil {
		report.MostFollowedBusinesses = []models.FollowedBusiness{}
	}

	s.Logger.Debug("analytics computed", zap.Int64("users", report.Totals.Users), zap.Int64("businesses", report.Totals.Businesses))
	return &report, nil
}

// resolveRecentRefs batch-loads the owners of recent businesses, the authors of
// recent reviews and the businesses those reviews belong to.
func (s *DefaultAdminService) resolveRecentRefs(ctx context.Context, recentBiz []models.Business, recentReview []models.Review) (map[string]models.UserSummary, map[string]models.Business, error) {
	var userIDs, businessIDs []string
	for _, b := range recentBiz {
		if b.OwnerID != "" {
			userIDs = append(userIDs, b.OwnerID)
		}
	}
	for _, r := range recentReview {
		userIDs = append(userIDs, r.UserID)
		businessIDs = append(businessIDs, r.BusinessID)
	}

	var (
		users      = map[string]models.UserSummary{}
		businesses = map[string]models.Business{}
	)
	g, gctx := errgroup.WithContext(ctx)
	if len(userIDs) > 0 {
		g.Go(func() (err error) { users, err = s.Users.GetSummaries(gctx, userIDs); return })
	}
	if len(businessIDs) > 0 {
		g.Go(func() (err error) { businesses, err = s.Businesses.GetByIDs(gctx, businessIDs); return })
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return users, businesses, nil
}
