package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/antarin/antarin/internal/shared"
)

// DefaultTokenTTL is the validity window of an issued token. Tokens are
// never revoked server-side; they simply expire.
const DefaultTokenTTL = 24 * time.Hour

// Claims is the signed assertion embedded in a session token. The role is
// trusted as-is for the token's lifetime without re-reading the store.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// TokenCodec issues and validates signed, time-bounded session tokens.
// The signing secret is process-wide configuration loaded once at startup;
// rotating it invalidates every outstanding token.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec constructs a codec with the given secret and TTL.
// A zero TTL falls back to DefaultTokenTTL.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue mints a signed token for the user.
func (c *TokenCodec) Issue(user *User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	return token.SignedString(c.secret)
}

// Verify checks signature integrity and expiry, returning the embedded
// claims. The codec does not consult the credential store.
func (c *TokenCodec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, shared.ErrTokenExpired
		}
		return nil, shared.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, shared.ErrTokenInvalid
	}
	return claims, nil
}
