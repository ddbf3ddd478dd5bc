package memstore

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"time"

	"localconnect/database/repository"
	"localconnect/models"
	"localconnect/utils"
)

// BusinessRepo is the in-memory BusinessRepository.
type BusinessRepo struct{ s *Store }

func copyBusiness(b *models.Business) models.Business {
	out := *b
	out.Images = cloneStrings(b.Images)
	out.Location.Coordinates = append([]float64(nil), b.Location.Coordinates...)
	if b.OpeningHours != nil {
		out.OpeningHours = maps.Clone(b.OpeningHours)
	}
	return out
}

// sorted returns copies ordered by less; callers hold the read lock.
func (r *BusinessRepo) sorted(less func(a, b *models.Business) bool) []models.Business {
	all := make([]*models.Business, 0, len(r.s.businesses))
	for _, b := range r.s.businesses {
		all = append(all, b)
	}
	sort.SliceStable(all, func(i, j int) bool { return less(all[i], all[j]) })
	out := make([]models.Business, len(all))
	for i, b := range all {
		out[i] = copyBusiness(b)
	}
	return out
}

func oldestFirst(a, b *models.Business) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

func (r *BusinessRepo) Create(_ context.Context, business *models.Business) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.businesses[business.ID]; ok {
		return fmt.Errorf("business id %s: %w", business.ID, repository.ErrDuplicateKey)
	}
	c := copyBusiness(business)
	r.s.businesses[business.ID] = &c
	return nil
}

func (r *BusinessRepo) GetByID(_ context.Context, id string) (*models.Business, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.businesses[id]
	if !ok {
		return nil, fmt.Errorf("business with id %s: %w", id, repository.ErrNotFound)
	}
	c := copyBusiness(b)
	return &c, nil
}

func (r *BusinessRepo) GetByIDs(_ context.Context, ids []string) (map[string]models.Business, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make(map[string]models.Business, len(ids))
	for _, id := range ids {
		if b, ok := r.s.businesses[id]; ok {
			out[id] = copyBusiness(b)
		}
	}
	return out, nil
}

func (r *BusinessRepo) List(_ context.Context, page models.Page) ([]models.Business, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := r.sorted(oldestFirst)
	if page.Limit <= 0 {
		return all, nil
	}
	start := page.Page * page.Limit
	if start >= len(all) {
		return []models.Business{}, nil
	}
	end := min(start+page.Limit, len(all))
	return all[start:end], nil
}

func (r *BusinessRepo) FindWithinRadius(_ context.Context, lng, lat, radiusKm float64) ([]models.Business, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Business{}
	for _, b := range r.sorted(oldestFirst) {
		coords := b.Location.Coordinates
		if len(coords) != 2 {
			continue
		}
		if utils.GreatCircleKm(lng, lat, coords[0], coords[1]) <= radiusKm {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BusinessRepo) Update(_ context.Context, business *models.Business) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.businesses[business.ID]
	if !ok {
		return fmt.Errorf("business with id %s: %w", business.ID, repository.ErrNotFound)
	}
	c := copyBusiness(business)
	c.OwnerID = stored.OwnerID
	c.AverageRating = stored.AverageRating
	c.NumReviews = stored.NumReviews
	c.CreatedAt = stored.CreatedAt
	r.s.businesses[business.ID] = &c
	return nil
}

func (r *BusinessRepo) SetRating(_ context.Context, id string, average float64, count int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.businesses[id]
	if !ok {
		return fmt.Errorf("business with id %s: %w", id, repository.ErrNotFound)
	}
	b.AverageRating = average
	b.NumReviews = count
	b.UpdatedAt = time.Now()
	return nil
}

func (r *BusinessRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.businesses[id]; !ok {
		return fmt.Errorf("business with id %s: %w", id, repository.ErrNotFound)
	}
	delete(r.s.businesses, id)
	return nil
}

func (r *BusinessRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.businesses)), nil
}

func (r *BusinessRepo) TopRated(_ context.Context, n int) ([]models.Business, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := r.sorted(func(a, b *models.Business) bool {
		if a.AverageRating != b.AverageRating {
			return a.AverageRating > b.AverageRating
		}
		if a.NumReviews != b.NumReviews {
			return a.NumReviews > b.NumReviews
		}
		return a.ID < b.ID
	})
	return all[:clampN(n, len(all))], nil
}

func (r *BusinessRepo) Recent(_ context.Context, n int) ([]models.Business, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := r.sorted(func(a, b *models.Business) bool { return a.CreatedAt.After(b.CreatedAt) })
	return all[:clampN(n, len(all))], nil
}
