package followRepo

import (
	"context"
	"fmt"

	"localconnect/database/repository"
	"localconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoFollowRepo) Exists(ctx context.Context, userID, businessID string) (bool, error) {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"userId": userID, "businessId": businessID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return n > 0, nil
}

func (r *MongoFollowRepo) ListByUser(ctx context.Context, userID string) ([]models.Follow, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *MongoFollowRepo) ListByBusiness(ctx context.Context, businessID string) ([]models.Follow, error) {
	return r.find(ctx, bson.M{"businessId": businessID})
}

func (r *MongoFollowRepo) find(ctx context.Context, filter bson.M) ([]models.Follow, error) {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve follows: %w", err)
	}
	defer cursor.Close(ctx)

	follows := []models.Follow{}
	if err := cursor.All(ctx, &follows); err != nil {
		return nil, fmt.Errorf("failed to decode follows: %w", err)
	}
	return follows, nil
}

// CountByBusiness groups follows by business in one round trip.
func (r *MongoFollowRepo) CountByBusiness(ctx context.Context, businessIDs []string) (map[string]int64, error) {
	out := make(map[string]int64, len(businessIDs))
	if len(businessIDs) == 0 {
		return out, nil
	}
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"businessId": bson.M{"$in": businessIDs}}}},
		{{Key: "$group", Value: bson.M{"_id": "$businessId", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to count followers: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		BusinessID string `bson:"_id"`
		Count      int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode follower counts: %w", err)
	}
	for _, row := range rows {
		out[row.BusinessID] = row.Count
	}
	return out, nil
}

func (r *MongoFollowRepo) FollowedAmong(ctx context.Context, userID string, businessIDs []string) (map[string]bool, error) {
	out := make(map[string]bool)
	if userID == "" || len(businessIDs) == 0 {
		return out, nil
	}
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"userId": userID, "businessId": bson.M{"$in": businessIDs}}
	opts := options.Find().SetProjection(bson.M{"businessId": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch follow state: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []models.Follow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode follow state: %w", err)
	}
	for _, f := range rows {
		out[f.BusinessID] = true
	}
	return out, nil
}

func (r *MongoFollowRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count follows: %w", err)
	}
	return n, nil
}

// TopFollowed groups follows by business, joins the business name and drops orphans.
func (r *MongoFollowRepo) TopFollowed(ctx context.Context, n int) ([]models.FollowedBusiness, error) {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$businessId", "followers": bson.M{"$sum": 1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         repository.BusinessesCollection,
			"localField":   "_id",
			"foreignField": "id",
			"as":           "business",
		}}},
		{{Key: "$unwind", Value: "$business"}},
		{{Key: "$sort", Value: bson.D{{Key: "followers", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: int64(n)}},
		{{Key: "$project", Value: bson.M{"_id": 1, "followers": 1, "name": "$business.name"}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top followed businesses: %w", err)
	}
	defer cursor.Close(ctx)

	results := []models.FollowedBusiness{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode top followed businesses: %w", err)
	}
	return results, nil
}
