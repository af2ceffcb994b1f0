package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)
	require.NotEqual(t, "Secret123", hash)

	require.True(t, CompareHashAndPassword(hash, "Secret123"))
	require.False(t, CompareHashAndPassword(hash, "wrong"))
}

func TestValidatePasswordStrength(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Secret1", true},
		{"Ab1", false},         // too short
		{"alllower1", false},   // no uppercase
		{"ALLUPPER1", false},   // no lowercase
		{"NoDigitsHere", false},
		{"G00dEnough", true},
	}
	for _, tc := range cases {
		ok, msg := ValidatePasswordStrength(tc.password)
		if ok != tc.ok {
			t.Fatalf("password %q: got ok=%v (%s), want %v", tc.password, ok, msg, tc.ok)
		}
	}
}
