package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/lapor-desu/api-go/models"
)

type contextKey string

const UserContextKey contextKey = "user"

// GetUser returns the authenticated user resolved by the auth middleware,
// or nil when the request carried no valid token.
func GetUser(c *gin.Context) *models.User {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if u, ok := user.(*models.User); ok {
		return u
	}
	return nil
}
