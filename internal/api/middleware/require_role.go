package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/workmatch/internal/models"
	"github.com/yoockh/workmatch/internal/utils"
)

func RequireRole(allowed ...models.Role) gin.HandlerFunc {
	allow := make(map[models.Role]struct{}, len(allowed))
	for _, a := range allowed {
		allow[a] = struct{}{}
	}

	return func(c *gin.Context) {
		v, _ := c.Get(CtxIdentity)
		id, ok := v.(models.Identity)
		if !ok {
			abort(c, http.StatusForbidden, utils.CodeForbidden, "forbidden")
			return
		}
		if _, ok := allow[id.Role]; !ok {
			abort(c, http.StatusForbidden, utils.CodeForbidden, "forbidden")
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc { return RequireRole(models.RoleAdmin) }
