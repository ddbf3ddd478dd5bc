package memstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"localconnect/database/repository"
	"localconnect/models"
)

// OfferRepo is the in-memory OfferRepository.
type OfferRepo struct{ s *Store }

func (r *OfferRepo) Create(_ context.Context, offer *models.Offer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.offers[offer.ID]; ok {
		return fmt.Errorf("offer id %s: %w", offer.ID, repository.ErrDuplicateKey)
	}
	c := *offer
	r.s.offers[offer.ID] = &c
	return nil
}

func (r *OfferRepo) GetByID(_ context.Context, id string) (*models.Offer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.offers[id]
	if !ok {
		return nil, fmt.Errorf("offer with id %s: %w", id, repository.ErrNotFound)
	}
	c := *o
	return &c, nil
}

func (r *OfferRepo) collect(keep func(*models.Offer) bool) []models.Offer {
	out := []models.Offer{}
	for _, o := range r.s.offers {
		if keep(o) {
			out = append(out, *o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *OfferRepo) ListByBusiness(_ context.Context, businessID string, isActive *bool) ([]models.Offer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.collect(func(o *models.Offer) bool {
		return o.BusinessID == businessID && (isActive == nil || o.IsActive == *isActive)
	}), nil
}

func (r *OfferRepo) List(_ context.Context, activeAt *time.Time) ([]models.Offer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.collect(func(o *models.Offer) bool {
		return activeAt == nil || o.ActiveAt(*activeAt)
	}), nil
}

func (r *OfferRepo) Update(_ context.Context, offer *models.Offer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.offers[offer.ID]
	if !ok {
		return fmt.Errorf("offer with id %s: %w", offer.ID, repository.ErrNotFound)
	}
	c := *offer
	c.BusinessID = stored.BusinessID
	c.CreatedAt = stored.CreatedAt
	r.s.offers[offer.ID] = &c
	return nil
}

func (r *OfferRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.offers[id]; !ok {
		return fmt.Errorf("offer with id %s: %w", id, repository.ErrNotFound)
	}
	delete(r.s.offers, id)
	return nil
}
