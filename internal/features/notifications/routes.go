package notifications

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/foundly/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, repo *Repository) {
	handler := NewHandler(repo)

	group := router.Group("/notifications")
	group.Use(middleware.Auth())
	{
		group.GET("/", handler.List)
		group.GET("/unread-count", handler.UnreadCount)
		group.PUT("/:id/read", handler.MarkRead)
		group.PUT("/read-all", handler.MarkAllRead)
	}
}
