package handlers

import (
	"bat-go/internal/models"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the user loaded by the router middleware off the
// gin context.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
