package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Rihab-nikh/followUp-Backend/internal/application"
	"github.com/Rihab-nikh/followUp-Backend/internal/infrastructure/memory"
	"github.com/Rihab-nikh/followUp-Backend/pkg/helpers"
)

type tokensBody struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
	Tokens  *struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		TokenType    string `json:"token_type"`
	} `json:"tokens"`
}

func authEngine() (*gin.Engine, *application.AuthService) {
	users := memory.NewUserRepository()
	jwt := helpers.NewJWTManager("test-secret", 15*time.Minute, time.Hour)
	svc := application.NewAuthService(users, jwt, nil, nil, testLogger(), "http://localhost:3000/reset-password", 30*time.Minute)
	h := NewAuthHandler(svc, users, testLogger())

	r := gin.New()
	g := r.Group("/api/auth")
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/refresh", h.Refresh)
	g.POST("/logout", h.Logout)
	return r, svc
}

func decodeTokens(t *testing.T, raw []byte) tokensBody {
	t.Helper()
	var b tokensBody
	require.NoError(t, json.Unmarshal(raw, &b))
	return b
}

func TestRegisterIssuesTokens(t *testing.T) {
	r, svc := authEngine()

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"email": "lina@example.com", "password": "Secret123", "full_name": "Lina Torres",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeTokens(t, w.Body.Bytes())
	require.True(t, body.Success)
	require.NotNil(t, body.Tokens)
	require.Equal(t, "Bearer", body.Tokens.TokenType)

	// the issued access token is a valid access token, not a refresh one
	_, err := svc.JWT.Verify(body.Tokens.AccessToken, helpers.TokenAccess)
	require.NoError(t, err)
	_, err = svc.JWT.Verify(body.Tokens.AccessToken, helpers.TokenRefresh)
	require.Error(t, err)

	var data struct {
		UserID         string `json:"user_id"`
		AvatarInitials string `json:"avatar_initials"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.NotEmpty(t, data.UserID)
	require.Equal(t, "LT", data.AvatarInitials)
}

func TestRegisterWeakPassword(t *testing.T) {
	r, _ := authEngine()

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"email": "lina@example.com", "password": "short", "full_name": "Lina Torres",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, body.Success)
	require.Equal(t, "Password must be at least 6 characters long", body.Error)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := authEngine()

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"email": "lina@example.com", "password": "Secret123", "full_name": "Lina Torres",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"email": "lina@example.com", "password": "Secret123", "full_name": "Other Person",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "User already exists with this email", body.Error)
}

func TestLoginAndRefreshFlow(t *testing.T) {
	r, _ := authEngine()

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"email": "lina@example.com", "password": "Secret123", "full_name": "Lina Torres",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "lina@example.com", "password": "Secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	login := decodeTokens(t, w.Body.Bytes())
	require.Equal(t, "Login successful", login.Message)
	require.NotNil(t, login.Tokens)

	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/refresh", gin.H{
		"refresh_token": login.Tokens.RefreshToken,
	})
	require.Equal(t, http.StatusOK, w.Code)
	refreshed := decodeTokens(t, w.Body.Bytes())
	require.NotNil(t, refreshed.Tokens)
	require.NotEmpty(t, refreshed.Tokens.AccessToken)
	require.Equal(t, login.Tokens.RefreshToken, refreshed.Tokens.RefreshToken, "refresh token is reused, not rotated")
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := authEngine()

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"email": "lina@example.com", "password": "Secret123", "full_name": "Lina Torres",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "lina@example.com", "password": "Wrong123",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid email or password", body.Error)
}

func TestRefreshValidation(t *testing.T) {
	r, _ := authEngine()

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/refresh", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Refresh token required", body.Error)

	w, body = doJSON(t, r, http.MethodPost, "/api/auth/refresh", gin.H{"refresh_token": "garbage"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid or expired refresh token", body.Error)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	r, _ := authEngine()

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"email": "lina@example.com", "password": "Secret123", "full_name": "Lina Torres",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	reg := decodeTokens(t, w.Body.Bytes())

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/refresh", gin.H{
		"refresh_token": reg.Tokens.AccessToken,
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid or expired refresh token", body.Error)
}
