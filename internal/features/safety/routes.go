package safety

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/foundly/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, repo *Repository) {
	handler := NewHandler(repo)

	group := router.Group("/reports")
	group.Use(middleware.Auth())
	{
		group.POST("", handler.Create)

		admin := group.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("", handler.List)
			admin.PUT("/:id/status", handler.UpdateStatus)
		}
	}
}
