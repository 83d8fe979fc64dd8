package claims

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/foundly/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, service *Service) {
	handler := NewHandler(service)

	group := router.Group("/claims")
	group.Use(middleware.Auth())
	{
		group.PUT("/:itemId", handler.SetClaim)
	}
}
