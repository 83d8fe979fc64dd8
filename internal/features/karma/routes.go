package karma

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/foundly/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, repo *Repository, aggregator *Aggregator) {
	handler := NewHandler(repo, aggregator)

	group := router.Group("/karma")
	group.Use(middleware.Auth())
	{
		group.GET("/leaderboard", handler.Leaderboard)
		group.GET("/me", handler.History)
	}
}
