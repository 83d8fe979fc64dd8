package auth

import (
	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/foundly/internal/features/users"
)

func RegisterRoutes(router *gin.RouterGroup, firebase *auth.Client, repo *users.Repository) {
	handler := NewHandler(firebase, repo)

	group := router.Group("/auth")
	{
		group.POST("/signin", handler.SignIn)
	}
}
