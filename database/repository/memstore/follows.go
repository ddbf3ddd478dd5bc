package memstore

import (
	"context"
	"fmt"
	"sort"

	"localconnect/database/repository"
	"localconnect/models"
)

// FollowRepo is the in-memory FollowRepository.
type FollowRepo struct{ s *Store }

func followKey(userID, businessID string) string {
	return userID + "\x00" + businessID
}

func (r *FollowRepo) Create(_ context.Context, follow *models.Follow) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := followKey(follow.UserID, follow.BusinessID)
	if _, ok := r.s.follows[key]; ok {
		return fmt.Errorf("follow of %s by %s: %w", follow.BusinessID, follow.UserID, repository.ErrDuplicateKey)
	}
	c := *follow
	r.s.follows[key] = &c
	return nil
}

func (r *FollowRepo) Delete(_ context.Context, userID, businessID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := followKey(userID, businessID)
	if _, ok := r.s.follows[key]; !ok {
		return fmt.Errorf("follow of %s by %s: %w", businessID, userID, repository.ErrNotFound)
	}
	delete(r.s.follows, key)
	return nil
}

func (r *FollowRepo) Exists(_ context.Context, userID, businessID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.follows[followKey(userID, businessID)]
	return ok, nil
}

func (r *FollowRepo) collect(keep func(*models.Follow) bool) []models.Follow {
	out := []models.Follow{}
	for _, f := range r.s.follows {
		if keep(f) {
			out = append(out, *f)
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

func (r *FollowRepo) ListByUser(_ context.Context, userID string) ([]models.Follow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.collect(func(f *models.Follow) bool { return f.UserID == userID }), nil
}

func (r *FollowRepo) ListByBusiness(_ context.Context, businessID string) ([]models.Follow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.collect(func(f *models.Follow) bool { return f.BusinessID == businessID }), nil
}

func (r *FollowRepo) CountByBusiness(_ context.Context, businessIDs []string) (map[string]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wanted := make(map[string]bool, len(businessIDs))
	for _, id := range businessIDs {
		wanted[id] = true
	}
	out := make(map[string]int64, len(businessIDs))
	for _, f := range r.s.follows {
		if wanted[f.BusinessID] {
			out[f.BusinessID]++
		}
	}
	return out, nil
}

func (r *FollowRepo) FollowedAmong(_ context.Context, userID string, businessIDs []string) (map[string]bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make(map[string]bool)
	if userID == "" {
		return out, nil
	}
	for _, id := range businessIDs {
		if _, ok := r.s.follows[followKey(userID, id)]; ok {
			out[id] = true
		}
	}
	return out, nil
}

func (r *FollowRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.follows)), nil
}

func (r *FollowRepo) TopFollowed(_ context.Context, n int) ([]models.FollowedBusiness, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, f := range r.s.follows {
		counts[f.BusinessID]++
	}
	out := []models.FollowedBusiness{}
	for id, c := range counts {
		b, ok := r.s.businesses[id]
		if !ok {
			continue
		}
		out = append(out, models.FollowedBusiness{BusinessID: id, Name: b.Name, Followers: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Followers != out[j].Followers {
			return out[i].Followers > out[j].Followers
		}
		return out[i].BusinessID < out[j].BusinessID
	})
	return out[:clampN(n, len(out))], nil
}
