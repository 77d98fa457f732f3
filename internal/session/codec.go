package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is the single failure a Decode caller sees.
	// Malformed input, a bad signature, a rejected algorithm and an
	// expired claim all collapse into it so the boundary cannot leak
	// which check failed.
	ErrInvalidToken = errors.New("session: invalid token")

	// ErrMissingSecret is returned by NewCodec when the signing
	// secret is absent. Configuration precondition, checked once at
	// process start.
	ErrMissingSecret = errors.New("session: signing secret is required")
)

type sessionClaims struct {
	User      User  `json:"user"`
	CreatedAt int64 `json:"created_at"`
	ExpiresAt int64 `json:"expires_at"`
	jwt.RegisteredClaims
}

// Codec converts sessions to signed, self-expiring HS256 tokens and
// back. Read-only after construction, safe for concurrent use.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &Codec{secret: []byte(secret)}, nil
}

// Encode serializes s into a signed token carrying the session payload
// plus an exp claim equal to s.ExpiresAt. Deterministic for identical
// input and secret; performs no I/O.
func (c *Codec) Encode(s Session) (string, error) {
	claims := sessionClaims{
		User:      s.User,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.UnixMilli(s.ExpiresAt)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies token and reconstructs the session it encodes. The
// input is attacker-controlled: the signature is recomputed over
// header+payload, the algorithm pinned to HS256, and the exp claim
// checked by the parser before the session's own expiry is re-checked.
func (c *Codec) Decode(token string) (Session, error) {
	parsed, err := jwt.ParseWithClaims(
		token,
		&sessionClaims{},
		func(t *jwt.Token) (any, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrInvalidToken
			}
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return Session{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return Session{}, ErrInvalidToken
	}

	s := Session{
		User:      claims.User,
		CreatedAt: claims.CreatedAt,
		ExpiresAt: claims.ExpiresAt,
	}
	if s.IsExpired(time.Now()) {
		return Session{}, ErrInvalidToken
	}

	return s, nil
}
