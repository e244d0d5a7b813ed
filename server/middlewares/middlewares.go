package middlewares

import (
	"net/http"
	"strings"

	"github.com/Luismorlan/sociomux/app_config"
	"github.com/Luismorlan/sociomux/utils"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const (
	// UserIdKey is the gin context key the verified user id is stored under.
	UserIdKey = "sub"

	bearerPrefix = "Bearer "
)

// TokenVerifier gates protected routes on a valid bearer token. The
// "Authorization" header is required; a "Bearer " scheme marker and any
// whitespace right after it are stripped before verification.
//
// Status mapping: missing header is 403, an expired or otherwise invalid
// token is 401, anything unexpected is 500. On success the embedded user id
// is attached to the request context under UserIdKey and the chain continues.
func TokenVerifier(cfg *app_config.ServerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")

		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}

		if strings.HasPrefix(token, bearerPrefix) {
			token = strings.TrimLeft(token[len(bearerPrefix):], " \t")
		}

		userId, err := utils.ParseUserToken(token, cfg.JWTSecret)
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) || errors.Is(err, utils.ErrTokenInvalid) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Set(UserIdKey, userId)

		// before request
		c.Next()
	}
}

// UserId returns the verified caller id attached by TokenVerifier, empty
// string when the route is not gated (e.g. auth bypassed in development).
func UserId(c *gin.Context) string {
	return c.GetString(UserIdKey)
}
