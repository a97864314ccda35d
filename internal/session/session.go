package session

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/courtregistry/admin-api/pkg/logger"
)

const identityKey = "session.identity"

// Identity is the signed-in user's display identity, decoded once per
// request and injected into the request context. Handlers that need to
// know who acted read it from here instead of re-parsing tokens.
type Identity struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Middleware decodes a Bearer token into an Identity. When required is
// false an absent or invalid token just leaves the request anonymous;
// authorization itself is owned by the upstream identity service.
func Middleware(secret string, required bool, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := identityFromHeader(c.GetHeader("Authorization"), secret)
		if err != nil {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"error":   err.Error(),
				})
				return
			}
			log.Debug("Anonymous request", "reason", err.Error(), "path", c.Request.URL.Path)
			c.Next()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// FromContext returns the request's decoded identity, if any.
func FromContext(c *gin.Context) (*Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*Identity)
	return identity, ok
}

func identityFromHeader(header, secret string) (*Identity, error) {
	if header == "" {
		return nil, fmt.Errorf("missing authorization header")
	}

	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return nil, fmt.Errorf("authorization header is not a bearer token")
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid session claims")
	}

	identity := &Identity{
		UserID: claimString(claims, "sub"),
		Name:   claimString(claims, "name"),
		Email:  claimString(claims, "email"),
		Role:   claimString(claims, "role"),
	}
	return identity, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if value, ok := claims[key].(string); ok {
		return value
	}
	return ""
}
