package media

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/foundly/internal/middleware"
	"github.com/xyz-asif/foundly/internal/pkg/cloudinary"
)

func RegisterRoutes(router *gin.RouterGroup, cld *cloudinary.Service) {
	handler := NewHandler(cld)

	group := router.Group("/media")
	group.Use(middleware.Auth())
	{
		group.POST("/image", handler.UploadImage)
	}
}
