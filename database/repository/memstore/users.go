package memstore

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"localconnect/database/repository"
	"localconnect/models"
)

// UserRepo is the in-memory UserRepository.
type UserRepo struct{ s *Store }

func copyUser(u *models.User) *models.User {
	out := *u
	out.Favorites = cloneStrings(u.Favorites)
	if u.HomeLocation != nil {
		loc := *u.HomeLocation
		out.HomeLocation = &loc
	}
	return &out
}

func (r *UserRepo) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.ID]; ok {
		return fmt.Errorf("user id %s: %w", user.ID, repository.ErrDuplicateKey)
	}
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return fmt.Errorf("user email %s: %w", user.Email, repository.ErrDuplicateKey)
		}
	}
	r.s.users[user.ID] = copyUser(user)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, fmt.Errorf("user with id %s: %w", id, repository.ErrNotFound)
	}
	return copyUser(u), nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, repository.ErrNotFound)
}

func (r *UserRepo) GetSummaries(_ context.Context, ids []string) (map[string]models.UserSummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make(map[string]models.UserSummary, len(ids))
	for _, id := range ids {
		if u, ok := r.s.users[id]; ok {
			out[id] = u.Summary()
		}
	}
	return out, nil
}

func (r *UserRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.users)), nil
}

func (r *UserRepo) Recent(_ context.Context, n int) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := make([]models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		c := copyUser(u)
		c.PasswordHash = ""
		all = append(all, *c)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return all[:clampN(n, len(all))], nil
}

func (r *UserRepo) AddFavorite(_ context.Context, userID, businessID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok {
		return fmt.Errorf("user with id %s: %w", userID, repository.ErrNotFound)
	}
	if !slices.Contains(u.Favorites, businessID) {
		u.Favorites = append(u.Favorites, businessID)
	}
	u.UpdatedAt = time.Now()
	return nil
}

func (r *UserRepo) RemoveFavorite(_ context.Context, userID, businessID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok {
		return fmt.Errorf("user with id %s: %w", userID, repository.ErrNotFound)
	}
	u.Favorites = slices.DeleteFunc(u.Favorites, func(id string) bool { return id == businessID })
	u.UpdatedAt = time.Now()
	return nil
}
