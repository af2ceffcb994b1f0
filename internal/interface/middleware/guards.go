package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	"github.com/Rihab-nikh/followUp-Backend/pkg/response"
)

// CurrentUser returns the account Identity resolved for this request.
func CurrentUser(c *gin.Context) *entity.User {
	if v, ok := c.Get(CtxUserKey); ok {
		if u, ok := v.(*entity.User); ok {
			return u
		}
	}
	return nil
}

// CurrentUserID returns the authenticated user's id, or "" on public routes.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(CtxUserIDKey)
}

// RequireAuth rejects requests Identity let through without a principal.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			response.Abort(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		c.Next()
	}
}

// RequireAdmin restricts a route to administrator accounts.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			response.Abort(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		if u.Role != entity.RoleAdmin {
			response.Abort(c, http.StatusForbidden, "Admin access required")
			return
		}
		c.Next()
	}
}

// RequireAdminOrSelf allows administrators through unconditionally and other
// users only when the named path parameter is their own id.
func RequireAdminOrSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			response.Abort(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		if u.Role != entity.RoleAdmin && c.Param(param) != u.ID {
			response.Abort(c, http.StatusForbidden, "Access denied. Admin or self-access required")
			return
		}
		c.Next()
	}
}
