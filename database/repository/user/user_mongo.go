package userRepo

import (
	"time"

	"localconnect/database/repository"
	"localconnect/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const opTimeout = 5 * time.Second

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo(db *mongo.Database) UserRepository {
	repo := &MongoUserRepo{coll: db.Collection(repository.UsersCollection)}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("failed to create user indexes", zap.Error(err))
	}
	return repo
}
