package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	"github.com/Rihab-nikh/followUp-Backend/internal/infrastructure/memory"
	"github.com/Rihab-nikh/followUp-Backend/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode response: %v (body %s)", err, w.Body.String())
	}
	return e
}

func identityEngine(t *testing.T) (*gin.Engine, *helpers.JWTManager, string) {
	t.Helper()
	users := memory.NewUserRepository()
	id, err := users.Create(context.Background(), &entity.User{
		Email:    "amina@example.com",
		FullName: "Amina Haddad",
		Role:     entity.RoleUser,
	})
	require.NoError(t, err)

	jwt := helpers.NewJWTManager("test-secret", 15*time.Minute, time.Hour)

	r := gin.New()
	r.Use(Identity(users, jwt))
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "status": "healthy"})
	})
	r.GET("/api/meetings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "user_id": CurrentUserID(c)})
	})
	return r, jwt, id
}

func TestIdentityPublicPath(t *testing.T) {
	r, _, _ := identityEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, true, body["success"])
}

func TestIdentityMissingToken(t *testing.T) {
	r, _, _ := identityEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/meetings", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	e := decodeEnvelope(t, w)
	require.False(t, e.Success)
	require.Equal(t, "Authorization token required", e.Error)
}

func TestIdentityRawTokenRejected(t *testing.T) {
	r, jwt, id := identityEngine(t)

	tok, _, err := jwt.Generate(id, helpers.TokenAccess)
	require.NoError(t, err)

	// token without the Bearer prefix must not authenticate
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/meetings", nil)
	req.Header.Set("Authorization", tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Authorization token required", decodeEnvelope(t, w).Error)
}

func TestIdentityInvalidToken(t *testing.T) {
	r, _, _ := identityEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/meetings", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid or expired token", decodeEnvelope(t, w).Error)
}

func TestIdentityRefreshTokenRejected(t *testing.T) {
	r, jwt, id := identityEngine(t)

	refresh, _, err := jwt.Generate(id, helpers.TokenRefresh)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/meetings", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid or expired token", decodeEnvelope(t, w).Error)
}

func TestIdentityExpiredToken(t *testing.T) {
	users := memory.NewUserRepository()
	id, err := users.Create(context.Background(), &entity.User{Email: "x@example.com", Role: entity.RoleUser})
	require.NoError(t, err)

	expired := helpers.NewJWTManager("test-secret", -time.Minute, time.Hour)
	tok, _, err := expired.Generate(id, helpers.TokenAccess)
	require.NoError(t, err)

	r := gin.New()
	r.Use(Identity(users, helpers.NewJWTManager("test-secret", 15*time.Minute, time.Hour)))
	r.GET("/api/meetings", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/meetings", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid or expired token", decodeEnvelope(t, w).Error)
}

func TestIdentityValidToken(t *testing.T) {
	r, jwt, id := identityEngine(t)

	tok, _, err := jwt.Generate(id, helpers.TokenAccess)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/meetings", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, id, body["user_id"])
}

func TestIdentityUnknownUser(t *testing.T) {
	r, jwt, _ := identityEngine(t)

	tok, _, err := jwt.Generate("missing-user", helpers.TokenAccess)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/meetings", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "User not found", decodeEnvelope(t, w).Error)
}
