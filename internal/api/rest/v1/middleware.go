package v1

import (
	"context"
	"net/http"
	"strings"

	"github.com/StianAK82/regnskapsky/internal/domain/users"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// TokenAuthenticator resolves a bearer credential to an identity. Satisfied
// by users.AuthService for opaque tokens and by the OIDC verifier for ID
// tokens.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*users.Identity, error)
}

// AuthMiddleware authenticates the Authorization bearer value against each
// authenticator in order and attaches the resolved identity to both the gin
// context and the request context.
func AuthMiddleware(authenticators ...TokenAuthenticator) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || len(token) == 0 {
			var errorResponse ErrorResponse
			errorResponse.Message = "missing bearer token"
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse)
			return
		}

		for _, authenticator := range authenticators {
			identity, err := authenticator.Authenticate(ctx.Request.Context(), token)
			if err != nil {
				continue
			}
			ctx.Set(identityKey, identity)
			ctx.Request = ctx.Request.WithContext(users.ContextWithIdentity(ctx.Request.Context(), identity))
			ctx.Next()
			return
		}

		var errorResponse ErrorResponse
		errorResponse.Message = "invalid or expired token"
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse)
	}
}

// RequireAdmin rejects requests whose identity lacks the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity := currentIdentity(ctx)
		if identity == nil || !identity.IsAdmin() {
			var errorResponse ErrorResponse
			errorResponse.Message = "admin role required"
			ctx.AbortWithStatusJSON(http.StatusForbidden, errorResponse)
			return
		}
		ctx.Next()
	}
}

// currentIdentity returns the identity set by AuthMiddleware, nil when absent.
func currentIdentity(ctx *gin.Context) *users.Identity {
	value, exists := ctx.Get(identityKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*users.Identity)
	if !ok {
		return nil
	}
	return identity
}
