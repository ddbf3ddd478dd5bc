package routes

import (
	"time"

	"localconnect/handlers"
	"localconnect/middleware"
	"localconnect/models"
	"localconnect/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	users := api.Group("/users")
	{
		users.POST("/register", hb.User.RegisterUserHandler)
		users.POST("/login", hb.User.LoginHandler)

		// Protected routes (Require Authentication)
		protected := users.Group("", hb.Auth.Required())
		protected.GET("/profile", hb.User.ProfileHandler)
		protected.POST("/favorites/:businessId", hb.User.AddFavoriteHandler)
		protected.DELETE("/favorites/:businessId", hb.User.RemoveFavoriteHandler)
	}
}

// RegisterBusinessRoutes registers the directory. Reads accept anonymous callers.
func RegisterBusinessRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	biz := api.Group("/business")
	{
		public := biz.Group("", hb.Auth.Optional())
		public.GET("", hb.Business.ListBusinessesHandler)
		public.GET("/nearby", hb.Business.NearbyHandler)
		public.GET("/:id", hb.Business.GetBusinessHandler)

		protected := biz.Group("", hb.Auth.Required())
		protected.POST("", hb.Business.CreateBusinessHandler)
		protected.PUT("/:id", hb.Business.UpdateBusinessHandler)
		protected.DELETE("/:id", hb.Business.DeleteBusinessHandler)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	reviews := api.Group("/review")
	{
		reviews.GET("/:businessId", hb.Review.ListReviewsHandler)

		protected := reviews.Group("", hb.Auth.Required())
		protected.POST("/:businessId", hb.Review.SubmitReviewHandler)
		protected.PUT("/:id", hb.Review.UpdateReviewHandler)
		protected.DELETE("/:id", hb.Review.DeleteReviewHandler)
	}
}

// RegisterFollowRoutes registers follow endpoints; all require authentication.
func RegisterFollowRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	follow := api.Group("/follow", hb.Auth.Required())
	{
		follow.GET("/my", hb.Follow.MyFollowsHandler)
		follow.GET("/business/:businessId", hb.Follow.FollowersHandler)
		follow.POST("/:businessId", hb.Follow.FollowBusinessHandler)
		follow.DELETE("/:businessId", hb.Follow.UnfollowBusinessHandler)
	}
}

// RegisterTrendingRoutes registers visit recording and the trending list.
func RegisterTrendingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	trending := api.Group("/trending")
	{
		trending.GET("", hb.Auth.Optional(), hb.Trending.GetTrendingHandler)
		trending.POST("", hb.Auth.Required(), hb.Trending.RecordVisitHandler)
	}
}

// RegisterOfferRoutes registers offer endpoints.
func RegisterOfferRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	offers := api.Group("/offer")
	{
		offers.GET("", hb.Offer.ListOffersHandler)
		offers.GET("/:businessId", hb.Offer.BusinessOffersHandler)

		protected := offers.Group("", hb.Auth.Required())
		protected.POST("/:businessId", hb.Offer.CreateOfferHandler)
		protected.PUT("/:id", hb.Offer.UpdateOfferHandler)
		protected.DELETE("/:id", hb.Offer.DeleteOfferHandler)
	}
}

// RegisterCategoryRoutes registers category endpoints.
func RegisterCategoryRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	categories := api.Group("/category")
	{
		categories.GET("", hb.Category.ListCategoriesHandler)
		categories.POST("", hb.Auth.Required(), middleware.RoleRequired(models.RoleAdmin), hb.Category.CreateCategoryHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	adminGroup := api.Group("/admin", hb.Auth.Required(), middleware.RoleRequired(models.RoleAdmin))
	{
		adminGroup.GET("/analytics", hb.Admin.AnalyticsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", handlers.HealthHandler(hb.Health))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	api := r.Group("/api")
	RegisterUserRoutes(api, hb)
	RegisterBusinessRoutes(api, hb)
	RegisterReviewRoutes(api, hb)
	RegisterFollowRoutes(api, hb)
	RegisterTrendingRoutes(api, hb)
	RegisterOfferRoutes(api, hb)
	RegisterCategoryRoutes(api, hb)
	RegisterAdminRoutes(api, hb)
	RegisterHealthRoute(r, hb)
}

// NewRouter builds the engine with global middleware and every route.
func NewRouter(hb *handlers.HandlerBundle, logger *zap.Logger, maxRequestsPerMin int, requestTimeout time.Duration) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware(maxRequestsPerMin))
	router.Use(middleware.RequestTimeout(requestTimeout))
	RegisterRoutes(router, hb)
	return router
}
