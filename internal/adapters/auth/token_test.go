package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssuer_Issue(t *testing.T) {
	secret := "test-secret"
	issuer := NewJWTIssuer(secret)

	token, err := issuer.Issue("0xabc123", 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Parse and verify claims
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "0xabc123", claims.Subject)
}

func TestJWTVerifier_Verify(t *testing.T) {
	issuer := NewJWTIssuer("test-secret")

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantSub string
		wantErr bool
	}{
		{
			name: "valid token",
			token: func(t *testing.T) string {
				tok, err := issuer.Issue("0xabc123", time.Hour)
				require.NoError(t, err)
				return tok
			},
			wantSub: "0xabc123",
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				tok, err := NewJWTIssuer("other-secret").Issue("0xabc123", time.Hour)
				require.NoError(t, err)
				return tok
			},
			wantErr: true,
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				tok, err := issuer.Issue("0xabc123", -time.Minute)
				require.NoError(t, err)
				return tok
			},
			wantErr: true,
		},
		{
			name:    "garbage",
			token:   func(t *testing.T) string { return "not.a.token" },
			wantErr: true,
		},
		{
			name: "missing subject",
			token: func(t *testing.T) string {
				tok, err := issuer.Issue("", time.Hour)
				require.NoError(t, err)
				return tok
			},
			wantErr: true,
		},
	}

	verifier := NewJWTVerifier("test-secret")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := verifier.Verify(tt.token(t))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSub, sub)
		})
	}
}
