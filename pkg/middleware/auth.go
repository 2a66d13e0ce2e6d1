package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/slientgoat/gl-id-generator/pkg/jwt"
	"github.com/slientgoat/gl-id-generator/pkg/response"
)

const (
	ClientKey     = "client"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// Auth validates bearer tokens issued to calling services.
type Auth struct {
	tokens *jwt.Manager
}

// NewAuth creates a new auth middleware backed by a token manager.
func NewAuth(tokens *jwt.Manager) *Auth {
	return &Auth{tokens: tokens}
}

// RequireAuth returns a Gin middleware that validates bearer tokens.
// Rejections carry the same response envelope as handler errors.
func (a *Auth) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, "invalid authorization format")
			return
		}

		token := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := a.tokens.Verify(token)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, jwt.ErrExpiredToken) {
				msg = "token has expired"
			}
			abortUnauthorized(c, msg)
			return
		}

		// Expose caller identity to handlers and the request logger.
		c.Set(ClientKey, claims.Client)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	response.Unauthorized(c, message)
	c.Abort()
}
