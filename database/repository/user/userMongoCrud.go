package userRepo

import (
	"context"
	"fmt"
	"time"

	"localconnect/database/repository"
	"localconnect/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new user document.
func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	if user.Favorites == nil {
		user.Favorites = []string{}
	}
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", repository.Translate(err))
	}
	return nil
}

// AddFavorite adds businessID to the user's favorites if absent.
func (r *MongoUserRepo) AddFavorite(ctx context.Context, userID, businessID string) error {
	return r.updateFavorites(ctx, userID, bson.M{
		"$addToSet": bson.M{"favorites": businessID},
		"$set":      bson.M{"updatedAt": time.Now()},
	})
}

// RemoveFavorite pulls businessID from the user's favorites.
func (r *MongoUserRepo) RemoveFavorite(ctx context.Context, userID, businessID string) error {
	return r.updateFavorites(ctx, userID, bson.M{
		"$pull": bson.M{"favorites": businessID},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
}

func (r *MongoUserRepo) updateFavorites(ctx context.Context, userID string, update bson.M) error {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to update favorites for user %s: %w", userID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s: %w", userID, repository.ErrNotFound)
	}
	return nil
}
