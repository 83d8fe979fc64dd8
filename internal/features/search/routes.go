package search

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/foundly/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, repo *Repository) {
	handler := NewHandler(repo)

	group := router.Group("/search")
	group.Use(middleware.Auth())
	{
		group.GET("/items", handler.Items)
		group.GET("/categories", handler.Categories)
	}
}
