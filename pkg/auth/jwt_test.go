package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexqna/lexqna/internal/domain"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := &JWTService{Secret: []byte("test-secret")}

	token, err := svc.GenerateJWT("lawyer-1", domain.RoleLawyer, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "lawyer-1", claims.UserID)
	assert.Equal(t, domain.RoleLawyer, claims.Role)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestValidateToken(t *testing.T) {
	svc := &JWTService{Secret: []byte("test-secret")}

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name: "Garbage Token",
			token: func(t *testing.T) string {
				return "not.a.token"
			},
			wantErr: ErrTokenInvalid,
		},
		{
			name: "Expired Token",
			token: func(t *testing.T) string {
				s, err := svc.GenerateJWT("asker-1", domain.RoleAsker, time.Now().Add(-time.Minute))
				require.NoError(t, err)
				return s
			},
			wantErr: ErrTokenInvalid,
		},
		{
			name: "Wrong Secret",
			token: func(t *testing.T) string {
				other := &JWTService{Secret: []byte("another-secret")}
				s, err := other.GenerateJWT("asker-1", domain.RoleAsker, time.Now().Add(time.Hour))
				require.NoError(t, err)
				return s
			},
			wantErr: ErrTokenInvalid,
		},
		{
			name: "Missing UserID",
			token: func(t *testing.T) string {
				tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    tokenIssuer,
				})
				s, err := tok.SignedString([]byte("test-secret"))
				require.NoError(t, err)
				return s
			},
			wantErr: ErrTokenClaims,
		},
		{
			name: "Foreign Issuer",
			token: func(t *testing.T) string {
				tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					UserID: "asker-1",
					Role:   domain.RoleAsker,
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    "someone-else",
					},
				})
				s, err := tok.SignedString([]byte("test-secret"))
				require.NoError(t, err)
				return s
			},
			wantErr: ErrTokenClaims,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token(t))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, claims)
		})
	}
}
