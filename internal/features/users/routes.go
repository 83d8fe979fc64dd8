package users

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/foundly/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, repo *Repository, purger *Purger) {
	handler := NewHandler(repo, purger)

	group := router.Group("/users")
	group.Use(middleware.Auth())
	{
		group.GET("/me", handler.Me)
		group.GET("/:id", handler.Get)
		group.DELETE("/:id", handler.Delete)

		admin := group.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/", handler.List)
			admin.POST("/:id/timeout", handler.Timeout)
			admin.DELETE("/:id/timeout", handler.LiftTimeout)
			admin.DELETE("/timeouts/expired", handler.ClearExpiredTimeouts)
		}
	}
}
