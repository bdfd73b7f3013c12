package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the session claims embedded in a signed token.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	UserID   int    `json:"uid"`
}

// TokenService issues and verifies HS256 session tokens. The signing secret
// and lifetime are fixed at construction and safe for concurrent use.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService with the given secret and token lifetime.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding the user's identity.
func (s *TokenService) Issue(username string, userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Username: username,
		UserID:   userID,
	})

	return token.SignedString(s.secret)
}

// Verify checks the signature and expiry and returns the embedded claims.
// A malformed, tampered, or expired token yields an error.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Username == "" || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
