package reviewRepo

import (
	"context"
	"fmt"

	"localconnect/database/repository"
	"localconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoReviewRepo) GetByUserAndBusiness(ctx context.Context, userID, businessID string) (*models.Review, error) {
	return r.findOne(ctx, bson.M{"userId": userID, "businessId": businessID})
}

func (r *MongoReviewRepo) findOne(ctx context.Context, filter bson.M) (*models.Review, error) {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	var review models.Review
	if err := r.coll.FindOne(ctx, filter).Decode(&review); err != nil {
		return nil, fmt.Errorf("failed to fetch review: %w", repository.Translate(err))
	}
	return &review, nil
}

func (r *MongoReviewRepo) ListByBusiness(ctx context.Context, businessID string) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{"businessId": businessID}, opts)
}

func (r *MongoReviewRepo) Recent(ctx context.Context, n int) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(int64(n))
	return r.find(ctx, bson.M{}, opts)
}

func (r *MongoReviewRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Review, error) {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// StatsByBusiness groups reviews by business and averages their ratings.
func (r *MongoReviewRepo) StatsByBusiness(ctx context.Context, businessIDs []string) (map[string]models.RatingStats, error) {
	out := make(map[string]models.RatingStats, len(businessIDs))
	if len(businessIDs) == 0 {
		return out, nil
	}
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"businessId": bson.M{"$in": businessIDs}}}},
		{{Key: "$group", Value: bson.M{
			"_id":     "$businessId",
			"average": bson.M{"$avg": "$rating"},
			"count":   bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate review stats: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		BusinessID string  `bson:"_id"`
		Average    float64 `bson:"average"`
		Count      int     `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode review stats: %w", err)
	}
	for _, row := range rows {
		out[row.BusinessID] = models.RatingStats{Count: row.Count, Average: row.Average}
	}
	return out, nil
}

func (r *MongoReviewRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return n, nil
}
