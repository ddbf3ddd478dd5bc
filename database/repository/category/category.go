package categoryRepo

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

// CategoryRepository defines methods for category data access.
type CategoryRepository interface {
	// Create inserts a category. A taken name yields repository.ErrDuplicateKey.
	Create(ctx context.Context, category *models.Category) error
	// List returns all categories sorted by name.
	List(ctx context.Context) ([]models.Category, error)
}

// MongoCategoryRepo implements CategoryRepository using MongoDB.
type MongoCategoryRepo struct {
	coll *mongo.Collection
}

// NewMongoCategoryRepo creates a new instance of CategoryRepository using MongoDB.
func NewMongoCategoryRepo(db *mongo.Database) CategoryRepository {
	repo := &MongoCategoryRepo{coll: db.Collection(repository.CategoriesCollection)}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("failed to create category indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoCategoryRepo) ensureIndexes() error {
	ctx, cancel := repository.NewContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, category); err != nil {
		return fmt.Errorf("failed to create category: %w", repository.Translate(err))
	}
	return nil
}

func (r *MongoCategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}
