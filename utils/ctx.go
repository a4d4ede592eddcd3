package utils

import (
	"github.com/Antdol/LittleLemonAPI/authz"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey    = "userId"
	principalKey = "principal"
)

func SetUserID(c *gin.Context, id uint) { c.Set(userIDKey, id) }

func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func SetPrincipal(c *gin.Context, p authz.Principal) { c.Set(principalKey, p) }

// CurrentPrincipal returns the caller resolved by the gate, or the zero
// Principal on public routes.
func CurrentPrincipal(c *gin.Context) authz.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(authz.Principal); ok {
			return p
		}
	}
	return authz.Principal{}
}
