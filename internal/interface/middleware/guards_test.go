package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
)

func withUser(u *entity.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if u != nil {
			c.Set(CtxUserIDKey, u.ID)
			c.Set(CtxUserKey, u)
		}
		c.Next()
	}
}

func TestRequireAuth(t *testing.T) {
	r := gin.New()
	r.GET("/in", withUser(&entity.User{ID: "u1", Role: entity.RoleUser}), RequireAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/out", withUser(nil), RequireAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/in", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/out", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Authentication required", decodeEnvelope(t, w).Error)
}

func TestRequireAdmin(t *testing.T) {
	admin := &entity.User{ID: "a1", Role: entity.RoleAdmin}
	user := &entity.User{ID: "u1", Role: entity.RoleUser}

	r := gin.New()
	r.GET("/admin", withUser(admin), RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/user", withUser(user), RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user", nil))
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "Admin access required", decodeEnvelope(t, w).Error)
}

func TestRequireAdminOrSelf(t *testing.T) {
	admin := &entity.User{ID: "a1", Role: entity.RoleAdmin}
	user := &entity.User{ID: "u1", Role: entity.RoleUser}

	newEngine := func(u *entity.User) *gin.Engine {
		r := gin.New()
		r.GET("/users/:user_id", withUser(u), RequireAdminOrSelf("user_id"), func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	// admin reads anyone
	w := httptest.NewRecorder()
	newEngine(admin).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/u1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	// user reads self
	w = httptest.NewRecorder()
	newEngine(user).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/u1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	// user reads someone else
	w = httptest.NewRecorder()
	newEngine(user).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/u2", nil))
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "Access denied. Admin or self-access required", decodeEnvelope(t, w).Error)
}
