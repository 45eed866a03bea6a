package middlewares

import (
	"context"
	"errors"
	"strings"

	"nagaralert-be/apperrors"
	"nagaralert-be/models"
	authUtils "nagaralert-be/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	identityKey = "identity"
	// UserIDKey holds the authenticated user's hex id.
	UserIDKey = "user_id"
)

// UserLoader fetches the user a token was issued to.
type UserLoader interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Authenticate verifies the access token in the Authorization header and
// attaches the caller's identity. Inactive accounts are rejected.
func Authenticate(tokens *authUtils.TokenManager, users UserLoader) gin.HandlerFunc {
	return authenticate(tokens, users, "Authorization", authUtils.AccessToken, true)
}

// RefreshAuthenticate verifies the refresh token in the refresh header.
func RefreshAuthenticate(tokens *authUtils.TokenManager, users UserLoader) gin.HandlerFunc {
	return authenticate(tokens, users, "refresh", authUtils.RefreshToken, false)
}

func authenticate(tokens *authUtils.TokenManager, users UserLoader, header string, typ authUtils.TokenType, requireActive bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearer(c.GetHeader(header))
		if tokenString == "" {
			abortWithError(c, apperrors.NewUnauthenticated("No authorization token provided"))
			return
		}

		claims, err := tokens.Parse(tokenString, typ)
		if err != nil {
			if errors.Is(err, authUtils.ErrTokenExpired) {
				abortWithError(c, apperrors.NewUnauthenticated("Token expired. Please login again."))
				return
			}
			abortWithError(c, apperrors.NewUnauthenticated("Invalid token."))
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.Subject)
		if err != nil {
			abortWithError(c, apperrors.NewUnauthenticated("Invalid token."))
			return
		}
		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				abortWithError(c, apperrors.NewUnauthenticated("User not found"))
				return
			}
			abortWithError(c, apperrors.NewInternal("Failed to load user", err))
			return
		}
		if requireActive && user.Status != models.UserActive {
			abortWithError(c, apperrors.NewNotActivated("Account not active."))
			return
		}

		identity, err := models.NewIdentity(user)
		if err != nil {
			abortWithError(c, apperrors.NewInternal("Failed to read user profile", err))
			return
		}
		c.Set(identityKey, identity)
		c.Set(UserIDKey, user.ID.Hex())
		c.Next()
	}
}

// bearer returns the last space-separated segment, so both "Bearer <t>"
// and a bare token work.
func bearer(header string) string {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// CurrentIdentity returns the identity attached by Authenticate.
func CurrentIdentity(c *gin.Context) (*models.Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := value.(*models.Identity)
	return identity, ok && identity != nil
}

// SetIdentity attaches identity to the request. Used by tests and by
// Authenticate.
func SetIdentity(c *gin.Context, identity *models.Identity) {
	c.Set(identityKey, identity)
	c.Set(UserIDKey, identity.ID.Hex())
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
