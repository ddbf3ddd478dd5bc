package database

import (
	businessRepo "localconnect/database/repository/business"
	categoryRepo "localconnect/database/repository/category"
	followRepo "localconnect/database/repository/follow"
	offerRepo "localconnect/database/repository/offer"
	reviewRepo "localconnect/database/repository/review"
	userRepo "localconnect/database/repository/user"
	visitRepo "localconnect/database/repository/visit"

	"go.mongodb.org/mongo-driver/mongo"
)

// Stores bundles one repository per collection.
type Stores struct {
	Users      userRepo.UserRepository
	Businesses businessRepo.BusinessRepository
	Reviews    reviewRepo.ReviewRepository
	Follows    followRepo.FollowRepository
	Visits     visitRepo.VisitRepository
	Offers     offerRepo.OfferRepository
	Categories categoryRepo.CategoryRepository
}

// NewMongoStores builds every repository on db and ensures their indexes.
func NewMongoStores(db *mongo.Database) Stores {
	return Stores{
		Users:      userRepo.NewMongoUserRepo(db),
		Businesses: businessRepo.NewMongoBusinessRepo(db),
		Reviews:    reviewRepo.NewMongoReviewRepo(db),
		Follows:    followRepo.NewMongoFollowRepo(db),
		Visits:     visitRepo.NewMongoVisitRepo(db),
		Offers:     offerRepo.NewMongoOfferRepo(db),
		Categories: categoryRepo.NewMongoCategoryRepo(db),
	}
}
