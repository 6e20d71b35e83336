package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tutoring_queue/internal/models"
	"tutoring_queue/internal/response"
)

const (
	userIDKey = "userID"
	roleKey   = "role"
)

// AuthMiddleware verifies the access token and puts userID and role into the context.
func AuthMiddleware(issuer *Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{
				Code:    "NO_AUTH_HEADER",
				Message: "Authorization required",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		id, err := issuer.ParseAccess(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(userIDKey, id.UserID)
		c.Set(roleKey, id.Role)
		c.Next()
	}
}

// RequireRole rejects callers whose token carries a different role.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if Role(c) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "This action requires the " + string(role) + " role",
			})
			return
		}
		c.Next()
	}
}

func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func Role(c *gin.Context) models.Role {
	if r, ok := c.Get(roleKey); ok {
		if role, ok := r.(models.Role); ok {
			return role
		}
	}
	return ""
}
