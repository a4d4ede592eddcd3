package middlewares

import (
	"log/slog"

	"github.com/Antdol/LittleLemonAPI/authz"
	"github.com/Antdol/LittleLemonAPI/pkg/resp"
	"github.com/Antdol/LittleLemonAPI/utils"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Gate evaluates the policy table once per request. Roles come from load
// on every request, so group changes apply immediately. Handlers read the
// result with utils.CurrentPrincipal.
func Gate(policy authz.Policy, load authz.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			// unmatched: let gin answer 404/405
			c.Next()
			return
		}
		rule, ok := policy.Lookup(c.Request.Method, route)
		if !ok {
			slog.Warn("route has no policy entry", "method", c.Request.Method, "route", route)
			resp.Forbidden(c, "You do not have permission to do this.")
			return
		}

		var p authz.Principal
		if uid := utils.CurrentUserID(c); uid != 0 {
			var err error
			p, err = load(uid)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// token for a user that no longer exists
				resp.Unauthorized(c, "user not found")
				return
			}
			if err != nil {
				resp.ServerError(c, err)
				c.Abort()
				return
			}
			utils.SetPrincipal(c, p)
		}

		if !rule.Allows(p) {
			resp.Forbidden(c, "You do not have permission to do this.")
			return
		}
		c.Next()
	}
}
