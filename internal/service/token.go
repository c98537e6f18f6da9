package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taskboard/internal/model"
)

// TokenIssuer mints a bearer token for an authenticated user. The server
// issues JWTs; the local board issues opaque tokens, since nothing verifies
// them remotely.
type TokenIssuer interface {
	Issue(user *model.User) (string, error)
}

// Claims is the JWT payload; user_id identifies the owner on every request.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTManager issues and verifies HS256 bearer tokens.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ttl}
}

func (m *JWTManager) Issue(user *model.User) (string, error) {
	if len(m.secret) == 0 {
		return "", errors.New("jwt secret is not set")
	}
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses the token and returns the owning user id. Any failure,
// including expiry, comes back as ErrTokenInvalid.
func (m *JWTManager) Verify(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return 0, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return 0, ErrTokenInvalid
	}
	return claims.UserID, nil
}

// OpaqueTokenIssuer mints random tokens for local mode, where the token only
// marks "logged in" and is never verified by a server.
type OpaqueTokenIssuer struct{}

func (OpaqueTokenIssuer) Issue(*model.User) (string, error) {
	return uuid.NewString(), nil
}
