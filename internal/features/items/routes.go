package items

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/foundly/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, repo *Repository, gate TimeoutGate, stats StatsRecorder, matcher Matcher) {
	handler := NewHandler(repo, gate, stats, matcher)

	group := router.Group("/items")
	group.Use(middleware.Auth())
	{
		group.POST("/:kind", handler.Create)
		group.GET("/:kind", handler.List)
		group.GET("/:kind/:id", handler.Get)
		group.PUT("/:kind/:id", handler.Update)
		group.DELETE("/:kind/:id", handler.Delete)
	}
}
