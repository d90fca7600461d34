package middleware

import (
	"net/http"
	"strings"

	"joino/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key carrying the authenticated user ID.
const ContextUserID = "userID"

// JWTAuthUserMiddleware resolves the requesting user from a Bearer token.
// Token issuance lives in the identity service; here the token is only
// verified and its subject placed on the context for handlers.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
