package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextClientClaims is the key used to store token claims in the Gin context.
	ContextClientClaims = "clientClaims"
)

// Authoriz rejects requests without a valid bearer token.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Attach claims to the request context for further use.
		c.Set(ContextClientClaims, claims)
		c.Next()
	}
}

// RequireScope lets through requests whose token carries scope. It must run
// after Authoriz.
func RequireScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, ok := c.Get(ContextClientClaims)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, _ := value.(map[string]interface{})
		granted, _ := claims["scope"].(string)
		for _, s := range strings.Fields(granted) {
			if s == scope {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "missing scope " + scope})
	}
}
