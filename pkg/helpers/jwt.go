package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind discriminates access from refresh tokens. A token of one kind is
// never accepted where the other is expected.
type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// JWTManager handles generation and validation of JWT tokens
type JWTManager struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func NewJWTManager(secret string, accessTTL, refreshTTL time.Duration) *JWTManager {
	return &JWTManager{
		Secret:     []byte(secret),
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
	}
}

type Claims struct {
	UserID string `json:"user_id"`
	Kind   string `json:"type"`
	jwt.RegisteredClaims
}

// Generate signs a token of the given kind for userID. Access tokens get the
// short TTL, refresh tokens the long one.
func (m *JWTManager) Generate(userID string, kind TokenKind) (string, time.Time, error) {
	ttl := m.AccessTTL
	if kind == TokenRefresh {
		ttl = m.RefreshTTL
	}
	exp := time.Now().Add(ttl)
	claims := &Claims{
		UserID: userID,
		Kind:   string(kind),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Verify parses tokenStr and checks signature, expiry and kind. It fails
// closed: every failure mode collapses to ErrInvalidToken so callers cannot
// leak the reason to clients.
func (m *JWTManager) Verify(tokenStr string, kind TokenKind) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Kind != string(kind) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
