package engagement

import (
	"context"
	"errors"

	"localconnect/database/repository"
	"localconnect/models"
	"localconnect/services"

	"go.uber.org/zap"
)

// foldRatings returns the mean and count of reviews; the mean is 0 when there are none.
func foldRatings(reviews []models.Review) (float64, int) {
	if len(reviews) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews)), len(reviews)
}

// recomputeRating re-reads every review of the business and stores the fold.
// The caller holds the business's rating lock.
func (s *DefaultEngagementService) recomputeRating(ctx context.Context, businessID string) error {
	reviews, err := s.Reviews.ListByBusiness(ctx, businessID)
	if err != nil {
		return services.StoreError(err, "", "")
	}
	average, count := foldRatings(reviews)
	if err := s.Businesses.SetRating(ctx, businessID, average, count); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Deleted business; its remaining reviews are orphans with no aggregate to keep.
			s.Logger.Warn("rating recompute skipped for missing business", zap.String("businessId", businessID))
			return nil
		}
		return services.StoreError(err, "", "")
	}
	s.Logger.Debug("rating recomputed",
		zap.String("businessId", businessID),
		zap.Float64("averageRating", average),
		zap.Int("numReviews", count))
	return nil
}
