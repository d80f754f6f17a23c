package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/lexqna/lexqna/internal/domain"
)

const tokenIssuer = "lexqna"

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenClaims  = errors.New("invalid token claims")
)

type JWTServiceInterface interface {
	GenerateJWT(userID string, role domain.Role, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Claims carries the authenticated identity. Role gates the lawyer-only and
// admin-only route groups without an extra DB lookup per request.
type Claims struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
	jwt.StandardClaims
}

type JWTService struct {
	// Secret overrides the signing key; the zero value falls back to the
	// JWT_SECRET environment variable or a development default.
	Secret []byte
}

func (s *JWTService) signingKey() []byte {
	if len(s.Secret) > 0 {
		return s.Secret
	}
	if env := os.Getenv("JWT_SECRET"); env != "" {
		return []byte(env)
	}
	return []byte("lexqna-dev-secret")
}

func (s *JWTService) GenerateJWT(userID string, role domain.Role, expirationTime time.Time) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    tokenIssuer,
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey())
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.signingKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == "" || claims.Issuer != tokenIssuer {
		return nil, ErrTokenClaims
	}

	return claims, nil
}
