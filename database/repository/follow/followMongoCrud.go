package followRepo

import (
	"context"
	"fmt"

	"localconnect/database/repository"
	"localconnect/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *MongoFollowRepo) Create(ctx context.Context, follow *models.Follow) error {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, follow); err != nil {
		return fmt.Errorf("failed to create follow: %w", repository.Translate(err))
	}
	return nil
}

func (r *MongoFollowRepo) Delete(ctx context.Context, userID, businessID string) error {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID, "businessId": businessID})
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("follow of %s by %s: %w", businessID, userID, repository.ErrNotFound)
	}
	return nil
}
