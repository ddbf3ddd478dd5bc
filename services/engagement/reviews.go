package engagement

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
)

func validRating(r int) bool {
	return r >= models.MinRating && r <= models.MaxRating
}

// withRatingLock runs write followed by a rating recomputation inside the business's critical section.
func (s *DefaultEngagementService) withRatingLock(ctx context.Context, businessID string, write func() error) error {
	unlock, err := s.locker().Lock(ctx, businessID)
	if err != nil {
		return utils.Internal("failed to lock business rating", err)
	}
	defer unlock()

	if err := write(); err != nil {
		return err
	}
	return s.recomputeRating(ctx, businessID)
}

func (s *DefaultEngagementService) SubmitReview(ctx context.Context, caller *models.Caller, businessID string, input models.ReviewInput) (*models.Review, error) {
	if caller == nil {
		return nil, utils.Unauthorized("Not authorized")
	}
	if !validRating(input.Rating) {
		return nil, utils.BadRequest("rating must be an integer between 1 and 5")
	}
	if _, err := s.Businesses.GetByID(ctx, businessID); err != nil {
		return nil, services.StoreError(err, "Business not found", "")
	}
	_, err := s.Reviews.GetByUserAndBusiness(ctx, caller.ID, businessID)
	switch {
	case err == nil:
		return nil, utils.Conflict("You already reviewed this business")
	case !errors.Is(err, repository.ErrNotFound):
		return nil, services.StoreError(err, "", "")
	}

	now := s.now()
	review := &models.Review{
		ID:         uuid.NewString(),
		UserID:     caller.ID,
		BusinessID: businessID,
		Rating:     input.Rating,
		Comment:    strings.TrimSpace(input.Comment),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = s.withRatingLock(ctx, businessID, func() error {
		// The unique (userId, businessId) index settles concurrent duplicates.
		return services.StoreError(s.Reviews.Create(ctx, review), "", "You already reviewed this business")
	})
	if err != nil {
		return nil, err
	}
	s.Logger.Info("review submitted", zap.String("reviewId", review.ID), zap.String("businessId", businessID))
	return review, nil
}

// UpdateReview merges the patch into the caller's own review.
func (s *DefaultEngagementService) UpdateReview(ctx context.Context, caller *models.Caller, reviewID string, patch models.ReviewPatch) (*models.Review, error) {
	if caller == nil {
		return nil, utils.Unauthorized("Not authorized")
	}
	review, err := s.Reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, services.StoreError(err, "Review not found", "")
	}
	if review.UserID != caller.ID {
		return nil, utils.Forbidden("Not authorized to update this review")
	}
	if patch.Rating != nil {
		if !validRating(*patch.Rating) {
			return nil, utils.BadRequest("rating must be an integer between 1 and 5")
		}
		review.Rating = *patch.Rating
	}
	if patch.Comment != nil {
		review.Comment = strings.TrimSpace(*patch.Comment)
	}
	review.UpdatedAt = s.now()

	err = s.withRatingLock(ctx, review.BusinessID, func() error {
		return services.StoreError(s.Reviews.Update(ctx, review), "Review not found", "")
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview is allowed for the author and for admins.
func (s *DefaultEngagementService) DeleteReview(ctx context.Context, caller *models.Caller, reviewID string) error {
	if caller == nil {
		return utils.Unauthorized("Not authorized")
	}
	review, err := s.Reviews.GetByID(ctx, reviewID)
	if err != nil {
		return services.StoreError(err, "Review not found", "")
	}
	if review.UserID != caller.ID && !caller.IsAdmin() {
		return utils.Forbidden("Not authorized to delete this review")
	}

	err = s.withRatingLock(ctx, review.BusinessID, func() error {
		return services.StoreError(s.Reviews.Delete(ctx, reviewID), "Review not found", "")
	})
	if err != nil {
		return err
	}
	s.Logger.Info("review deleted", zap.String("reviewId", reviewID), zap.String("by", caller.ID))
	return nil
}

// ListReviews returns a business's reviews with their authors, newest first.
func (s *DefaultEngagementService) ListReviews(ctx context.Context, businessID string) ([]models.ReviewView, error) {
	if _, err := s.Businesses.GetByID(ctx, businessID); err != nil {
		return nil, services.StoreError(err, "Business not found", "")
	}
	reviews, err := s.Reviews.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, services.StoreError(err, "", "")
	}
	userIDs := make([]string, 0, len(reviews))
	for _, r := range reviews {
		userIDs = append(userIDs, r.UserID)
	}
	authors, err := s.Users.GetSummaries(ctx, userIDs)
	if err != nil {
		return nil, services.StoreError(err, "", "")
	}
	views := make([]models.ReviewView, len(reviews))
	for i, r := range reviews {
		views[i] = models.ReviewView{Review: r}
		if a, ok := authors[r.UserID]; ok {
			views[i].User = &a
		}
	}
	return views, nil
}
