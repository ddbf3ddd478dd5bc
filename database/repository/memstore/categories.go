package memstore

import (
	"context"
	"fmt"
	"sort"

	"localconnect/database/repository"
	"localconnect/models"
)

// CategoryRepo is the in-memory CategoryRepository.
type CategoryRepo struct{ s *Store }

func (r *CategoryRepo) Create(_ context.Context, category *models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.categories {
		if c.Name == category.Name {
			return fmt.Errorf("category %q: %w", category.Name, repository.ErrDuplicateKey)
		}
	}
	c := *category
	r.s.categories[category.ID] = &c
	return nil
}

func (r *CategoryRepo) List(_ context.Context) ([]models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
