package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJWTGenerateAndVerify(t *testing.T) {
	m := NewJWTManager("test-secret", 15*time.Minute, 7*24*time.Hour)

	access, exp, err := m.Generate("user-1", TokenAccess)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.True(t, exp.After(time.Now()))

	claims, err := m.Verify(access, TokenAccess)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, string(TokenAccess), claims.Kind)
}

func TestJWTKindMismatch(t *testing.T) {
	m := NewJWTManager("test-secret", 15*time.Minute, 7*24*time.Hour)

	access, _, err := m.Generate("user-1", TokenAccess)
	require.NoError(t, err)
	refresh, _, err := m.Generate("user-1", TokenRefresh)
	require.NoError(t, err)

	if _, err := m.Verify(access, TokenRefresh); err != ErrInvalidToken {
		t.Fatalf("access token accepted as refresh: err=%v", err)
	}
	if _, err := m.Verify(refresh, TokenAccess); err != ErrInvalidToken {
		t.Fatalf("refresh token accepted as access: err=%v", err)
	}
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute, 7*24*time.Hour)

	tok, _, err := m.Generate("user-1", TokenAccess)
	require.NoError(t, err)

	_, err = m.Verify(tok, TokenAccess)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTWrongSecret(t *testing.T) {
	m1 := NewJWTManager("secret-one", 15*time.Minute, time.Hour)
	m2 := NewJWTManager("secret-two", 15*time.Minute, time.Hour)

	tok, _, err := m1.Generate("user-1", TokenAccess)
	require.NoError(t, err)

	_, err = m2.Verify(tok, TokenAccess)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTMalformed(t *testing.T) {
	m := NewJWTManager("test-secret", 15*time.Minute, time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.Verify(tok, TokenAccess); err != ErrInvalidToken {
			t.Fatalf("malformed token %q accepted: err=%v", tok, err)
		}
	}
}
