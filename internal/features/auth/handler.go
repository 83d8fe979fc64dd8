package auth

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/foundly/internal/features/users"
	"github.com/xyz-asif/foundly/internal/pkg/logger"
	"github.com/xyz-asif/foundly/internal/pkg/response"
	"github.com/xyz-asif/foundly/internal/pkg/token"
)

type Handler struct {
	firebase *auth.Client
	users    *users.Repository
}

func NewHandler(firebase *auth.Client, repo *users.Repository) *Handler {
	return &Handler{firebase: firebase, users: repo}
}

// SignIn godoc
// @Summary Sign in with a Firebase ID token
// @Description Verifies the Firebase ID token, provisions the account on first sign-in, and returns an API access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Firebase ID token"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /auth/signin [post]
func (h *Handler) SignIn(c *gin.Context) {
	if h.firebase == nil {
		response.Error(c, http.StatusServiceUnavailable, "Sign-in is not configured", "SERVICE_UNAVAILABLE")
		return
	}

	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	identity, err := VerifyFirebaseToken(c.Request.Context(), h.firebase, req.IDToken)
	if err != nil {
		response.Unauthorized(c, "Invalid or expired ID token")
		return
	}

	user, err := h.users.GetByFirebaseUID(c.Request.Context(), identity.UID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	if user == nil {
		user = newUserFromIdentity(identity)
		if err := h.users.CreateUser(c.Request.Context(), user); err != nil {
			response.DomainError(c, err)
			return
		}
		logger.Info("provisioned account for %s", user.Email)
	}

	accessToken, err := token.GenerateToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		response.InternalServerError(c, "Failed to generate access token")
		return
	}

	response.Success(c, AuthResponse{AccessToken: accessToken, User: user})
}

// newUserFromIdentity builds the initial account document for a first
// sign-in. The username falls back to the email local part when the identity
// provider has no display name.
func newUserFromIdentity(identity *FirebaseUser) *users.User {
	username := strings.TrimSpace(identity.Name)
	if username == "" {
		username = identity.Email
		if at := strings.IndexByte(username, '@'); at > 0 {
			username = username[:at]
		}
	}

	avatar := identity.Picture
	if avatar == "" {
		avatar = users.NewAvatarURL(username)
	}

	return &users.User{
		FirebaseUID: identity.UID,
		Email:       identity.Email,
		Username:    username,
		Avatar:      avatar,
		Role:        users.RoleUser,
	}
}
