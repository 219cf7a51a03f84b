package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/mohammad-ishtiaque/Agro-clima-api/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/mohammad-ishtiaque/Agro-clima-api/internal/errors"
)

type TokenGenerator interface {
	Generate(userID string) (string, error)
	Verify(tokenString string) (*JWTCustomClaims, error)
	AccessTokenExpiry() time.Duration
}

// TokenService signs and verifies stateless session tokens. The secret is
// loaded once at startup and injected here; there is no rotation within a
// process lifetime.
type TokenService struct {
	secret            []byte
	accessTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

func NewTokenService(secret string, accessMinutes int) *TokenService {
	return &TokenService{
		secret:            []byte(secret),
		accessTokenExpiry: time.Duration(accessMinutes) * time.Minute,
	}
}

func (ts *TokenService) Generate(userID string) (string, error) {
	now := time.Now()

	claims := JWTCustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.accessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
}

// Verify parses and validates a token string. Tampered, malformed and
// expired tokens all fold into the same error so callers cannot probe which
// condition failed.
func (ts *TokenService) Verify(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secret, nil
	})

	if err != nil || !token.Valid {
		return nil, autherror.ErrUnauthenticated
	}

	return claims, nil
}

func (ts *TokenService) AccessTokenExpiry() time.Duration {
	return ts.accessTokenExpiry
}
