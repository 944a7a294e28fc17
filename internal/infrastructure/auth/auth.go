package auth

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// UserHeader names the header carrying the caller's user ID. The service
// trusts the gateway in front of it to have authenticated the user.
const UserHeader = "X-User"

const userIDContextKey = "auth.user_id"

// Identity extracts the acting user from request headers.
type Identity struct {
	log zerolog.Logger
}

// NewIdentity creates the identity extractor.
func NewIdentity(log zerolog.Logger) *Identity {
	return &Identity{log: log}
}

// Middleware resolves the caller from the X-User header. A missing header is
// unauthorized; a header that does not parse as a positive integer is a
// validation failure.
func (i *Identity) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(UserHeader))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing " + UserHeader + " header",
				"code":  "auth-missing-user",
			})
			return
		}

		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			i.log.Debug().Str("header", raw).Msg("malformed user header")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "invalid " + UserHeader + " header",
				"code":  "auth-invalid-user",
			})
			return
		}

		c.Set(userIDContextKey, uint(id))
		c.Next()
	}
}

// GetUserID returns the authenticated user ID set by the middleware.
func GetUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDContextKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
