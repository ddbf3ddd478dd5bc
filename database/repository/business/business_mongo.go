package businessRepo

import (
	"time"

	"localconnect/database/repository"
	"localconnect/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const opTimeout = 5 * time.Second

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo creates a new instance of BusinessRepository using MongoDB.
func NewMongoBusinessRepo(db *mongo.Database) BusinessRepository {
	repo := &MongoBusinessRepo{coll: db.Collection(repository.BusinessesCollection)}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("failed to create business indexes", zap.Error(err))
	}
	return repo
}
