package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/ripplefeed/api-go/models"
)

// UserClaims is the validated actor identity handed to the core by the auth
// middleware. The core never sees credentials.
type UserClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

// IsPrivileged reports whether the actor's role allows acting on other
// users' content.
func (u *UserClaims) IsPrivileged() bool {
	return u.Role == models.RoleAdmin || u.Role == models.RoleOwner
}

type contextKey string

const UserContextKey contextKey = "user"

func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}
