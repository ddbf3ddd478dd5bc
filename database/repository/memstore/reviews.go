package memstore

import (
	"context"
	"fmt"
	"sort"

	"localconnect/database/repository"
	"localconnect/models"
)

// ReviewRepo is the in-memory ReviewRepository.
type ReviewRepo struct{ s *Store }

func (r *ReviewRepo) Create(_ context.Context, review *models.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reviews[review.ID]; ok {
		return fmt.Errorf("review id %s: %w", review.ID, repository.ErrDuplicateKey)
	}
	for _, existing := range r.s.reviews {
		if existing.UserID == review.UserID && existing.BusinessID == review.BusinessID {
			return fmt.Errorf("review of %s by %s: %w", review.BusinessID, review.UserID, repository.ErrDuplicateKey)
		}
	}
	c := *review
	r.s.reviews[review.ID] = &c
	return nil
}

func (r *ReviewRepo) GetByID(_ context.Context, id string) (*models.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rv, ok := r.s.reviews[id]
	if !ok {
		return nil, fmt.Errorf("review with id %s: %w", id, repository.ErrNotFound)
	}
	c := *rv
	return &c, nil
}

func (r *ReviewRepo) GetByUserAndBusiness(_ context.Context, userID, businessID string) (*models.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, rv := range r.s.reviews {
		if rv.UserID == userID && rv.BusinessID == businessID {
			c := *rv
			return &c, nil
		}
	}
	return nil, fmt.Errorf("review of %s by %s: %w", businessID, userID, repository.ErrNotFound)
}

func (r *ReviewRepo) Update(_ context.Context, review *models.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rv, ok := r.s.reviews[review.ID]
	if !ok {
		return fmt.Errorf("review with id %s: %w", review.ID, repository.ErrNotFound)
	}
	rv.Rating = review.Rating
	rv.Comment = review.Comment
	rv.UpdatedAt = review.UpdatedAt
	return nil
}

func (r *ReviewRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reviews[id]; !ok {
		return fmt.Errorf("review with id %s: %w", id, repository.ErrNotFound)
	}
	delete(r.s.reviews, id)
	return nil
}

// newestFirst collects the reviews matching keep; callers hold the read lock.
func (r *ReviewRepo) newestFirst(keep func(*models.Review) bool) []models.Review {
	out := []models.Review{}
	for _, rv := range r.s.reviews {
		if keep(rv) {
			out = append(out, *rv)
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

func (r *ReviewRepo) ListByBusiness(_ context.Context, businessID string) ([]models.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.newestFirst(func(rv *models.Review) bool { return rv.BusinessID == businessID }), nil
}

func (r *ReviewRepo) StatsByBusiness(_ context.Context, businessIDs []string) (map[string]models.RatingStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wanted := make(map[string]bool, len(businessIDs))
	for _, id := range businessIDs {
		wanted[id] = true
	}
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, rv := range r.s.reviews {
		if wanted[rv.BusinessID] {
			sums[rv.BusinessID] += rv.Rating
			counts[rv.BusinessID]++
		}
	}
	out := make(map[string]models.RatingStats, len(counts))
	for id, n := range counts {
		out[id] = models.RatingStats{Count: n, Average: float64(sums[id]) / float64(n)}
	}
	return out, nil
}

func (r *ReviewRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.reviews)), nil
}

func (r *ReviewRepo) Recent(_ context.Context, n int) ([]models.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := r.newestFirst(func(*models.Review) bool { return true })
	return all[:clampN(n, len(all))], nil
}
