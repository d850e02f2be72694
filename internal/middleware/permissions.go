package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
)

// RequireEditRights gates update endpoints: admin and moderator may edit,
// user may not. Create endpoints stay open to every authenticated role.
func RequireEditRights() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok || !role.CanEdit() {
			GetLoggerFromCtx(c.Request.Context()).Warn("Edit denied for role", "role", string(role))
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Fail("Insufficient permissions to edit records"))
			return
		}
		c.Next()
	}
}

// RequireDeleteRights gates delete endpoints: admin only.
func RequireDeleteRights() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok || !role.CanDelete() {
			GetLoggerFromCtx(c.Request.Context()).Warn("Delete denied for role", "role", string(role))
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Fail("Insufficient permissions to delete records"))
			return
		}
		c.Next()
	}
}
