package business

import (
	"context"
	"math"

	"localconnect/models"
	"localconnect/services"
	"localconnect/utils"

	"go.uber.org/zap"
)

// ListBusinesses returns every business, or one page of them when page.Limit > 0.
func (s *DefaultDirectoryService) ListBusinesses(ctx context.Context, caller *models.Caller, page models.Page) ([]models.BusinessView, error) {
	if page.Page < 0 || page.Limit < 0 {
		return nil, utils.BadRequest("page and limit must not be negative")
	}
	if page.Limit > 0 && page.Page > math.MaxInt/page.Limit {
		return nil, utils.BadRequest("page is out of range")
	}
	businesses, err := s.Businesses.List(ctx, page)
	if err != nil {
		return nil, services.StoreError(err, "", "")
	}
	return s.annotateFollowState(ctx, businesses, caller)
}

func (s *DefaultDirectoryService) GetBusiness(ctx context.Context, id string, caller *models.Caller) (*models.BusinessView, error) {
	b, err := s.Businesses.GetByID(ctx, id)
	if err != nil {
		return nil, services.StoreError(err, "Business not found", "")
	}
	views, err := s.annotateFollowState(ctx, []models.Business{*b}, caller)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// FindNearby returns businesses within radiusKm of (lng, lat) on a sphere of radius 6378.1 km.
func (s *DefaultDirectoryService) FindNearby(ctx context.Context, lng, lat, radiusKm float64, caller *models.Caller) ([]models.BusinessView, error) {
	if !utils.ValidCoordinates(lng, lat) {
		return nil, utils.BadRequest("lng must be within [-180, 180] and lat within [-90, 90]")
	}
	if !(radiusKm > 0) || math.IsInf(radiusKm, 1) {
		return nil, utils.BadRequest("radius must be a positive number of kilometres")
	}
	businesses, err := s.Businesses.FindWithinRadius(ctx, lng, lat, radiusKm)
	if err != nil {
		return nil, services.StoreError(err, "", "")
	}
	s.Logger.Debug("nearby search",
		zap.Float64("lng", lng), zap.Float64("lat", lat),
		zap.Float64("radiusKm", radiusKm), zap.Int("results", len(businesses)))
	return s.annotateFollowState(ctx, businesses, caller)
}
