// Package memstore keeps every collection in process memory. It enforces the
// same uniqueness rules as the MongoDB indexes and is used by tests and by
// STORE_DRIVER=memory.
package memstore

import (
	"sync"

	"localconnect/database"
	"localconnect/models"
)

// Store holds all collections behind one lock.
type Store struct {
	mu         sync.RWMutex
	users      map[string]*models.User
	businesses map[string]*models.Business
	reviews    map[string]*models.Review
	follows    map[string]*models.Follow
	visits     []models.Visit
	offers     map[string]*models.Offer
	categories map[string]*models.Category
}

// New returns an empty store.
func New() *Store {
	return &Store{
		users:      make(map[string]*models.User),
		businesses: make(map[string]*models.Business),
		reviews:    make(map[string]*models.Review),
		follows:    make(map[string]*models.Follow),
		offers:     make(map[string]*models.Offer),
		categories: make(map[string]*models.Category),
	}
}

// Stores exposes s through the repository interfaces.
func (s *Store) Stores() database.Stores {
	return database.Stores{
		Users:      &UserRepo{s},
		Businesses: &BusinessRepo{s},
		Reviews:    &ReviewRepo{s},
		Follows:    &FollowRepo{s},
		Visits:     &VisitRepo{s},
		Offers:     &OfferRepo{s},
		Categories: &CategoryRepo{s},
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func clampN(n, total int) int {
	if n < 0 || n > total {
		return total
	}
	return n
}
