package middleware

import (
	"net/http"

	intauth "backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// RequireCapability gates a route behind one capability tag. It assumes
// RequireAuth already stored the role in the context.
func RequireCapability(tag intauth.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetUserRole(c)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized: rol no presente en el contexto",
			})
			return
		}

		if !intauth.HasCapability(role, tag) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "forbidden: el rol no tiene permiso para esta pantalla",
			})
			return
		}

		c.Next()
	}
}

// RequireWrite additionally blocks mutating routes for read-only roles.
func RequireWrite() gin.HandlerFunc {
	return RequireCapability(intauth.CapWrite)
}
