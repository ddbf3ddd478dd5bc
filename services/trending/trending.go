package trending

import (
	"context"
	"time"

	businessRepo "localconnect/database/repository/business"
	reviewRepo "localconnect/database/repository/review"
	visitRepo "localconnect/database/repository/visit"
	"localconnect/models"
	"localconnect/services"
	"localconnect/utils"

	"go.uber.org/zap"
)

// TrendingService ranks businesses by recent visits.
type TrendingService interface {
	GetTrending(ctx context.Context, windowDays, limit int) ([]models.TrendingEntry, error)
}

// DefaultTrendingService is the production implementation.
type DefaultTrendingService struct {
	Visits     visitRepo.VisitRepository
	Businesses businessRepo.BusinessRepository
	Reviews    reviewRepo.ReviewRepository
	Logger     *zap.Logger
	Now        func() time.Time
}

// GetTrending counts visits with createdAt >= now-windowDays per business and
// returns the top limit, joined with business fields and review stats. A zero
// windowDays or limit selects the default. Order among equal counts is by
// business id and carries no meaning.
func (s *DefaultTrendingService) GetTrending(ctx context.Context, windowDays, limit int) ([]models.TrendingEntry, error) {
	if windowDays == 0 {
		windowDays = utils.DefaultTrendingDays
	}
	if limit == 0 {
		limit = utils.DefaultTrendingLimit
	}
	if windowDays < 0 || windowDays > utils.MaxTrendingDays {
		return nil, utils.BadRequest("days must be between 1 and 365")
	}
	if limit < 0 || limit > utils.MaxTrendingLimit {
		return nil, utils.BadRequest("limit must be between 1 and 100")
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	since := now.Add(-time.Duration(windowDays) * 24 * time.Hour)

	counts, err := s.Visits.CountByBusinessSince(ctx, since, limit)
	if err != nil {
		return nil, services.StoreError(err, "", "")
	}
	ids := make([]string, len(counts))
	for i, c := range counts {
		ids[i] = c.BusinessID
	}
	businesses, err := s.Businesses.GetByIDs(ctx, ids)
	if err != nil {
		return nil, services.StoreError(err, "", "")
	}
	stats, err := s.Reviews.StatsByBusiness(ctx, ids)
	if err != nil {
		return nil, services.StoreError(err, "", "")
	}

	entries := make([]models.TrendingEntry, 0, len(counts))
	for _, c := range counts {
		b, ok := businesses[c.BusinessID]
		if !ok {
			s.Logger.Debug("trending row skipped for missing business", zap.String("businessId", c.BusinessID))
			continue
		}
		entry := models.TrendingEntry{
			BusinessID: b.ID,
			Name:       b.Name,
			Category:   b.Category,
			Location:   b.Location,
			Images:     b.Images,
			VisitCount: c.Count,
		}
		if st, ok := stats[b.ID]; ok && st.Count > 0 {
			avg := st.Average
			entry.AverageRating = &avg
			entry.ReviewCount = st.Count
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
