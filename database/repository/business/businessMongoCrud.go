package businessRepo

import (
	"context"
	"fmt"
	"time"

	"localconnect/database/repository"
	"localconnect/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new business document.
func (r *MongoBusinessRepo) Create(ctx context.Context, business *models.Business) error {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, business); err != nil {
		return fmt.Errorf("failed to create business: %w", repository.Translate(err))
	}
	return nil
}

// Update writes every mutable field of business. The rating fields are left to SetRating.
func (r *MongoBusinessRepo) Update(ctx context.Context, business *models.Business) error {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":         business.Name,
		"description":  business.Description,
		"category":     business.Category,
		"images":       business.Images,
		"contact":      business.Contact,
		"location":     business.Location,
		"openingHours": business.OpeningHours,
		"isVerified":   business.IsVerified,
		"isFeatured":   business.IsFeatured,
		"updatedAt":    business.UpdatedAt,
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": business.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update business with id %s: %w", business.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business with id %s: %w", business.ID, repository.ErrNotFound)
	}
	return nil
}

// SetRating stores averageRating and numReviews.
func (r *MongoBusinessRepo) SetRating(ctx context.Context, id string, average float64, count int) error {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"averageRating": average,
		"numReviews":    count,
		"updatedAt":     time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set rating for business %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business with id %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

// Delete removes a business document by its ID.
func (r *MongoBusinessRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete business with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("business with id %s: %w", id, repository.ErrNotFound)
	}
	return nil
}
