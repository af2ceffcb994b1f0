package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	"github.com/Rihab-nikh/followUp-Backend/internal/infrastructure/memory"
	"github.com/Rihab-nikh/followUp-Backend/pkg/helpers"
)

func newAuthService() *AuthService {
	jwt := helpers.NewJWTManager("test-secret", 15*time.Minute, time.Hour)
	return NewAuthService(memory.NewUserRepository(), jwt, nil, nil, nil, "http://localhost:3000/reset-password", 30*time.Minute)
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	s := newAuthService()

	u, err := s.Register(ctx, "lina@example.com", "Secret123", "Lina Torres")
	require.NoError(t, err)
	require.Equal(t, entity.RoleUser, u.Role)
	require.Equal(t, "LT", u.AvatarInitials)
	require.NotNil(t, u.Preferences)

	// duplicate email
	_, err = s.Register(ctx, "lina@example.com", "Secret123", "Someone Else")
	require.ErrorIs(t, err, ErrEmailTaken)

	logged, pair, err := s.Login(ctx, "lina@example.com", "Secret123")
	require.NoError(t, err)
	require.Equal(t, u.ID, logged.ID)
	require.NotNil(t, logged.LastLogin)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	// the access token verifies as access, not as refresh
	claims, err := s.JWT.Verify(pair.AccessToken, helpers.TokenAccess)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UserID)
	_, err = s.JWT.Verify(pair.AccessToken, helpers.TokenRefresh)
	require.ErrorIs(t, err, helpers.ErrInvalidToken)
}

func TestLoginBadCredentials(t *testing.T) {
	ctx := context.Background()
	s := newAuthService()

	_, err := s.Register(ctx, "lina@example.com", "Secret123", "Lina Torres")
	require.NoError(t, err)

	_, _, err = s.Login(ctx, "lina@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = s.Login(ctx, "nobody@example.com", "Secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	s := newAuthService()

	u, err := s.Register(ctx, "lina@example.com", "Secret123", "Lina Torres")
	require.NoError(t, err)
	pair, err := s.IssueTokens(u.ID)
	require.NoError(t, err)

	access, exp, err := s.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.True(t, exp.After(time.Now()))

	claims, err := s.JWT.Verify(access, helpers.TokenAccess)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UserID)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	ctx := context.Background()
	s := newAuthService()

	u, err := s.Register(ctx, "lina@example.com", "Secret123", "Lina Torres")
	require.NoError(t, err)
	pair, err := s.IssueTokens(u.ID)
	require.NoError(t, err)

	_, _, err = s.Refresh(ctx, pair.AccessToken)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshUnknownUser(t *testing.T) {
	s := newAuthService()

	refresh, _, err := s.JWT.Generate("ghost", helpers.TokenRefresh)
	require.NoError(t, err)

	_, _, err = s.Refresh(context.Background(), refresh)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	s := newAuthService()

	u, err := s.Register(ctx, "lina@example.com", "Secret123", "Lina Torres")
	require.NoError(t, err)

	require.ErrorIs(t, s.ChangePassword(ctx, u.ID, "wrong", "Newpass1"), ErrWrongPassword)
	require.NoError(t, s.ChangePassword(ctx, u.ID, "Secret123", "Newpass1"))

	_, _, err = s.Login(ctx, "lina@example.com", "Secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = s.Login(ctx, "lina@example.com", "Newpass1")
	require.NoError(t, err)
}
