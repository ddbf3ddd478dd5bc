package offerRepo

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

// MongoOfferRepo implements OfferRepository using MongoDB.
type MongoOfferRepo struct {
	coll *mongo.Collection
}

// NewMongoOfferRepo creates a new instance of OfferRepository using MongoDB.
func NewMongoOfferRepo(db *mongo.Database) OfferRepository {
	repo := &MongoOfferRepo{coll: db.Collection(repository.OffersCollection)}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("failed to create offer indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoOfferRepo) ensureIndexes() error {
	ctx, cancel := repository.NewContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "validFrom", Value: 1}, {Key: "validTo", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoOfferRepo) Create(ctx context.Context, offer *models.Offer) error {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, offer); err != nil {
		return fmt.Errorf("failed to create offer: %w", repository.Translate(err))
	}
	return nil
}

func (r *MongoOfferRepo) GetByID(ctx context.Context, id string) (*models.Offer, error) {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	var offer models.Offer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&offer); err != nil {
		return nil, fmt.Errorf("failed to fetch offer with id %s: %w", id, repository.Translate(err))
	}
	return &offer, nil
}

func (r *MongoOfferRepo) ListByBusiness(ctx context.Context, businessID string, isActive *bool) ([]models.Offer, error) {
	filter := bson.M{"businessId": businessID}
	if isActive != nil {
		filter["isActive"] = *isActive
	}
	return r.find(ctx, filter)
}

func (r *MongoOfferRepo) List(ctx context.Context, activeAt *time.Time) ([]models.Offer, error) {
	filter := bson.M{}
	if activeAt != nil {
		filter["isActive"] = true
		filter["validFrom"] = bson.M{"$lte": *activeAt}
		filter["validTo"] = bson.M{"$gte": *activeAt}
	}
	return r.find(ctx, filter)
}

func (r *MongoOfferRepo) find(ctx context.Context, filter bson.M) ([]models.Offer, error) {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve offers: %w", err)
	}
	defer cursor.Close(ctx)

	offers := []models.Offer{}
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, fmt.Errorf("failed to decode offers: %w", err)
	}
	return offers, nil
}

func (r *MongoOfferRepo) Update(ctx context.Context, offer *models.Offer) error {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":           offer.Title,
		"description":     offer.Description,
		"discountPercent": offer.DiscountPercent,
		"validFrom":       offer.ValidFrom,
		"validTo":         offer.ValidTo,
		"isActive":        offer.IsActive,
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": offer.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update offer with id %s: %w", offer.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("offer with id %s: %w", offer.ID, repository.ErrNotFound)
	}
	return nil
}

func (r *MongoOfferRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete offer with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("offer with id %s: %w", id, repository.ErrNotFound)
	}
	return nil
}
