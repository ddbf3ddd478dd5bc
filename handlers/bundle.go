package handlers

import (
	"localconnect/middleware"
	"localconnect/utils"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Auth   *middleware.Authenticator
	Health *utils.HealthMonitor

	User     *UserHandler
	Business *BusinessHandler
	Review   *ReviewHandler
	Follow   *FollowHandler
	Trending *TrendingHandler
	Offer    *OfferHandler
	Category *CategoryHandler
	Admin    *AdminHandler
}
