package visitRepo

import (
	"context"
	"fmt"
	"time"

	"localconnect/database/repository"
	"localconnect/models"
	"localconnect/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const opTimeout = 5 * time.Second

// VisitRepository stores the append-only visit log.
type VisitRepository interface {
	Create(ctx context.Context, visit *models.Visit) error
	// CountByBusinessSince counts visits with createdAt >= since per business,
	// highest count first, truncated to limit rows.
	CountByBusinessSince(ctx context.Context, since time.Time, limit int) ([]models.VisitCount, error)
}

// MongoVisitRepo implements VisitRepository using MongoDB.
type MongoVisitRepo struct {
	coll *mongo.Collection
}

// NewMongoVisitRepo creates a new instance of VisitRepository using MongoDB.
func NewMongoVisitRepo(db *mongo.Database) VisitRepository {
	repo := &MongoVisitRepo{coll: db.Collection(repository.VisitsCollection)}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("failed to create visit indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoVisitRepo) ensureIndexes() error {
	ctx, cancel := repository.NewContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "businessId", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoVisitRepo) Create(ctx context.Context, visit *models.Visit) error {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, visit); err != nil {
		return fmt.Errorf("failed to record visit: %w", repository.Translate(err))
	}
	return nil
}

func (r *MongoVisitRepo) CountByBusinessSince(ctx context.Context, since time.Time, limit int) ([]models.VisitCount, error) {
	ctx, cancel := repository.NewContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{"_id": "$businessId", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: int64(limit)}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate visits: %w", err)
	}
	defer cursor.Close(ctx)

	counts := []models.VisitCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode visit counts: %w", err)
	}
	return counts, nil
}
