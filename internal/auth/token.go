package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tweeter/internal/tweeter"
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 24 * time.Hour

type claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies the signed session tokens that stand in for
// server-side sessions. Stateless, safe for concurrent use.
type Tokens struct {
	secret []byte
	ttl    time.Duration

	// Overridable for expiry tests
	now func() time.Time
}

func NewTokens(secret []byte) Tokens {
	return Tokens{
		secret: secret,
		ttl:    TokenTTL,
		now:    time.Now,
	}
}

// Issue signs a token carrying the user id, expiring after the TTL.
func (t Tokens) Issue(userID int64) (string, error) {
	now := t.now()
	c := claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
}

// Verify returns the user id carried by a valid token. Malformed tokens,
// bad signatures, wrong algorithms and expired tokens all collapse to the
// same unauthenticated error.
func (t Tokens) Verify(token string) (int64, error) {
	c := &claims{}
	parsed, err := jwt.ParseWithClaims(token, c, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !parsed.Valid || c.UserID == 0 {
		return 0, tweeter.ErrUnauthenticated
	}

	return c.UserID, nil
}
