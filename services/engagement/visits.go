package engagement

import (
	"context"
	"strings"

	"localconnect/models"
	"localconnect/services"
	"localconnect/utils"

	"github.com/google/uuid"
)

// RecordVisit appends a visit event. Aggregation happens at read time in trending.
func (s *DefaultEngagementService) RecordVisit(ctx context.Context, caller *models.Caller, businessID string) (*models.Visit, error) {
	if caller == nil {
		return nil, utils.Unauthorized("Not authorized")
	}
	businessID = strings.TrimSpace(businessID)
	if businessID == "" {
		return nil, utils.BadRequest("businessId is required")
	}
	if _, err := s.Businesses.GetByID(ctx, businessID); err != nil {
		return nil, services.StoreError(err, "Business not found", "")
	}
	visit := &models.Visit{
		ID:         uuid.NewString(),
		UserID:     caller.ID,
		BusinessID: businessID,
		CreatedAt:  s.now(),
	}
	if err := s.Visits.Create(ctx, visit); err != nil {
		return nil, services.StoreError(err, "", "")
	}
	return visit, nil
}
