package memstore

import (
	"context"
	"sort"
	"time"

	"localconnect/models"
)

// VisitRepo is the in-memory VisitRepository.
type VisitRepo struct{ s *Store }

func (r *VisitRepo) Create(_ context.Context, visit *models.Visit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.visits = append(r.s.visits, *visit)
	return nil
}

func (r *VisitRepo) CountByBusinessSince(_ context.Context, since time.Time, limit int) ([]models.VisitCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, v := range r.s.visits {
		if !v.CreatedAt.Before(since) {
			counts[v.BusinessID]++
		}
	}
	out := make([]models.VisitCount, 0, len(counts))
	for id, c := range counts {
		out = append(out, models.VisitCount{BusinessID: id, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].BusinessID < out[j].BusinessID
	})
	return out[:clampN(limit, len(out))], nil
}
