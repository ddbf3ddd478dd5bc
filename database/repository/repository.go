package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names.
const (
	UsersCollection      = "users"
	BusinessesCollection = "businesses"
	ReviewsCollection    = "reviews"
	FollowsCollection    = "follows"
	OffersCollection     = "offers"
	CategoriesCollection = "categories"
	VisitsCollection     = "visits"
)

var (
	// ErrNotFound is returned when a lookup by key matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// NewContext derives a context bounded by timeout from parent.
func NewContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

// Translate maps driver errors onto the package sentinels, keeping the original in the chain.
func Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return errors.Join(ErrNotFound, err)
	case mongo.IsDuplicateKeyError(err):
		return errors.Join(ErrDuplicateKey, err)
	default:
		return err
	}
}
