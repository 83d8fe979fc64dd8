package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/foundly/internal/config"
	"github.com/xyz-asif/foundly/internal/database"
	"github.com/xyz-asif/foundly/internal/features/auth"
	"github.com/xyz-asif/foundly/internal/features/claims"
	"github.com/xyz-asif/foundly/internal/features/items"
	"github.com/xyz-asif/foundly/internal/features/karma"
	"github.com/xyz-asif/foundly/internal/features/matching"
	"github.com/xyz-asif/foundly/internal/features/media"
	"github.com/xyz-asif/foundly/internal/features/notifications"
	"github.com/xyz-asif/foundly/internal/features/safety"
	"github.com/xyz-asif/foundly/internal/features/search"
	"github.com/xyz-asif/foundly/internal/features/users"
	"github.com/xyz-asif/foundly/internal/pkg/cloudinary"
	"github.com/xyz-asif/foundly/internal/pkg/logger"
)

// SetupRoutes builds every repository and service once and registers all
// feature routes under /api/v1.
func SetupRoutes(router *gin.Engine, mdb *database.MongoDB, cfg *config.Config) {
	api := router.Group("/api/v1")

	usersRepo := users.NewRepository(mdb.Database)
	itemsRepo := items.NewRepository(mdb.Database)
	notificationsRepo := notifications.NewRepository(mdb.Database)
	karmaRepo := karma.NewRepository(mdb.Database)

	matcher := matching.NewService(itemsRepo, notificationsRepo)
	claimsService := claims.NewService(itemsRepo, karmaRepo, usersRepo, claims.NewTxRunner(mdb))
	leaderboard := karma.NewAggregator(usersRepo, karmaRepo)

	// Sign-in and uploads degrade to 503 when their credentials are absent;
	// the rest of the API stays up.
	firebaseClient, err := auth.InitFirebase(cfg)
	if err != nil {
		logger.Warn("firebase sign-in disabled: %v", err)
	}
	cld, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryUploadFolder)
	if err != nil {
		logger.Warn("cloudinary uploads disabled: %v", err)
	}

	auth.RegisterRoutes(api, firebaseClient, usersRepo)
	users.RegisterRoutes(api, usersRepo, users.NewPurger(mdb))
	items.RegisterRoutes(api, itemsRepo, usersRepo, usersRepo, matcher)
	claims.RegisterRoutes(api, claimsService)
	notifications.RegisterRoutes(api, notificationsRepo)
	karma.RegisterRoutes(api, karmaRepo, leaderboard)
	search.RegisterRoutes(api, search.NewRepository(mdb.Database))
	safety.RegisterRoutes(api, safety.NewRepository(mdb.Database))
	media.RegisterRoutes(api, cld)
}
