package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nearbychat/config"
	"nearbychat/pkg/errors"
	"nearbychat/pkg/utils"
)

const userIDKey = "userID"

// APIKey rejects requests whose X-API-KEY header does not match the
// configured key. An empty configured key disables the gate.
func APIKey(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.Server.APIKey == "" {
			c.Next()
			return
		}
		if c.GetHeader("X-API-KEY") != cfg.Server.APIKey {
			abortWithError(c, errors.Unauthorized("invalid api key"))
			return
		}
		c.Next()
	}
}

// Auth resolves the current user from the Authorization bearer token.
func Auth(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abortWithError(c, errors.ErrNotAuthenticated)
			return
		}

		userID, err := utils.ParseJWTToken(token, cfg)
		if err != nil {
			abortWithError(c, errors.ErrNotAuthenticated)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
