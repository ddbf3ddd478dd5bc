package businessRepo

import (
	"context"
	"fmt"

	"localconnect/database/repository"
	"localconnect/models"
	"localconnect/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a business by its ID.
func (r *MongoBusinessRepo) GetByID(ctx context.Context, id string) (*models.Business, error) {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	var business models.Business
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&business); err != nil {
		return nil, fmt.Errorf("failed to fetch business with id %s: %w", id, repository.Translate(err))
	}
	return &business, nil
}

func (r *MongoBusinessRepo) GetByIDs(ctx context.Context, ids []string) (map[string]models.Business, error) {
	out := make(map[string]models.Business, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	found, err := r.find(ctx, bson.M{"id": bson.M{"$in": ids}}, options.Find())
	if err != nil {
		return nil, err
	}
	for _, b := range found {
		out[b.ID] = b
	}
	return out, nil
}

func (r *MongoBusinessRepo) List(ctx context.Context, page models.Page) ([]models.Business, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "id", Value: 1}})
	if page.Limit > 0 {
		opts.SetSkip(int64(page.Page * page.Limit)).SetLimit(int64(page.Limit))
	}
	return r.find(ctx, bson.M{}, opts)
}

// FindWithinRadius uses $geoWithin/$centerSphere, whose radius is in radians.
func (r *MongoBusinessRepo) FindWithinRadius(ctx context.Context, lng, lat, radiusKm float64) ([]models.Business, error) {
	filter := bson.M{
		"location": bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{bson.A{lng, lat}, utils.AngularRadius(radiusKm)},
			},
		},
	}
	return r.find(ctx, filter, options.Find())
}

func (r *MongoBusinessRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count businesses: %w", err)
	}
	return n, nil
}

func (r *MongoBusinessRepo) TopRated(ctx context.Context, n int) ([]models.Business, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "averageRating", Value: -1}, {Key: "numReviews", Value: -1}}).
		SetLimit(int64(n))
	return r.find(ctx, bson.M{}, opts)
}

func (r *MongoBusinessRepo) Recent(ctx context.Context, n int) ([]models.Business, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(int64(n))
	return r.find(ctx, bson.M{}, opts)
}

func (r *MongoBusinessRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Business, error) {
	ctx, cancel := repository.NewContext(ctx, opTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve businesses: %w", err)
	}
	defer cursor.Close(ctx)

	businesses := []models.Business{}
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, fmt.Errorf("failed to decode businesses: %w", err)
	}
	return businesses, nil
}
