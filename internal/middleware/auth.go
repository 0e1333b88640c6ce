// Package middleware holds the session authenticator and the role gate
// chain. Gates are pure checks over the authenticated identity — they
// never mutate state and always run before the handler touches the store.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/eventhub-dev/eventhub/internal/auth"
	"github.com/eventhub-dev/eventhub/internal/models"
	"github.com/eventhub-dev/eventhub/internal/store"
	"github.com/eventhub-dev/eventhub/internal/types"
)

// Identity is the authenticated account attached to the request context.
type Identity struct {
	ID         uint        `json:"id"`
	Username   string      `json:"username"`
	Role       models.Role `json:"role"`
	IsApproved bool        `json:"isApproved"`
}

// AuthMiddleware resolves the request to an identity. The token is taken
// from the Authorization header ("Bearer {token}") or, failing that, the
// session cookie login sets. No valid token means 401.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := bearerToken(ctx)

		if tokenString == "" {
			if cookie, err := ctx.Cookie("token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		token, err := auth.VerifyJWT(tokenString)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		userID, err := auth.UserIDFromToken(token)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		user, err := store.GetUser(ctx.Request.Context(), userID)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		ctx.Set(types.ContextUserKey, Identity{
			ID:         user.ID,
			Username:   user.Username,
			Role:       user.Role,
			IsApproved: user.IsApproved,
		})
		ctx.Next()
	}
}

// RequireApproved is the second half of the Authorized gate: plain users
// must be approved, admin-tier roles pass regardless of the flag.
func RequireApproved() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, ok := identityFrom(ctx)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		if !models.IsEffectivelyApproved(identity.Role, identity.IsApproved) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied – not authorized"})
			return
		}

		ctx.Next()
	}
}

// RequireAdmin passes identities whose role is in {admin, co-admin,
// super-admin}.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, ok := identityFrom(ctx)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		if !identity.Role.IsAdminTier() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden - Admin access required"})
			return
		}

		ctx.Next()
	}
}

// RequireSuperAdmin passes only the super-admin role.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, ok := identityFrom(ctx)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		if identity.Role != models.RoleSuperAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden - Super Admin access required"})
			return
		}

		ctx.Next()
	}
}

func identityFrom(ctx *gin.Context) (Identity, bool) {
	value, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return Identity{}, false
	}

	identity, ok := value.(Identity)

	return identity, ok
}

func bearerToken(ctx *gin.Context) string {
	authHeader := ctx.GetHeader("Authorization")

	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)

	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}
