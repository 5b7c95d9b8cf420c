// Package session signs the authenticated-user snapshot into the value of
// the session cookie and reads it back.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"etats/internal/authz"
)

var ErrInvalid = errors.New("invalid or expired session")

type Claims struct {
	User authz.SessionUser `json:"user"`
	jwt.RegisteredClaims
}

type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (c *Codec) TTL() time.Duration { return c.ttl }

// Issue returns a signed HS256 token carrying u.
func (c *Codec) Issue(u authz.SessionUser) (string, error) {
	now := c.now()
	claims := Claims{
		User: u,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.EmployeeID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}

// Parse verifies the token and returns the user snapshot it carries.
func (c *Codec) Parse(token string) (*authz.SessionUser, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalid
	}
	if claims.User.EmployeeID == "" {
		return nil, ErrInvalid
	}
	return &claims.User, nil
}
