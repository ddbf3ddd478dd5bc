package followRepo

import (
	"context"
	"fmt"
	"time"

	"localconnect/database/repository"
	"localconnect/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const opTimeout = 5 * time.Second

// MongoFollowRepo implements FollowRepository using MongoDB.
type MongoFollowRepo struct {
	coll *mongo.Collection
}

// NewMongoFollowRepo creates a new instance of FollowRepository using MongoDB.
func NewMongoFollowRepo(db *mongo.Database) FollowRepository {
	repo := &MongoFollowRepo{coll: db.Collection(repository.FollowsCollection)}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("failed to create follow indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoFollowRepo) ensureIndexes() error {
	ctx, cancel := repository.NewContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "businessId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "businessId", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
