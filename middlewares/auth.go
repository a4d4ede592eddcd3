package middlewares

import (
	"strings"

	"github.com/Antdol/LittleLemonAPI/authz"
	"github.com/Antdol/LittleLemonAPI/pkg/resp"
	"github.com/Antdol/LittleLemonAPI/utils"

	"github.com/gin-gonic/gin"
)

// Authenticate verifies the bearer token and stores the user id. Public
// routes pass without a token; a token that is sent must still be valid.
func Authenticate(policy authz.Policy, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rule, known := policy.Lookup(c.Request.Method, c.FullPath())
		public := !known || rule.Public

		h := c.GetHeader("Authorization")
		if h == "" {
			if !public {
				resp.Unauthorized(c, "Authentication credentials were not provided.")
				return
			}
			c.Next()
			return
		}
		if !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), secret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			return
		}
		utils.SetUserID(c, claims.UserID)
		c.Next()
	}
}
