package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/codedjade003/photobook-server/internal/domain"
)

// Claims are the session token claims: account identity plus the role the
// account held when the token was issued. Role changes re-issue; outstanding
// tokens keep the old claim until they expire.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issuer produces and verifies signed, time-bound session tokens. Issuance is
// pure computation; nothing is persisted and there is no revocation list.
type Issuer struct {
	secret []byte
	ttl    time.Duration

	// Now is the clock used for issue and verify; tests override it.
	Now func() time.Time
}

// NewIssuer creates a token issuer signing with the given HMAC secret.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		Now:    time.Now,
	}
}

// Issue signs a session token for the account with its current role.
func (i *Issuer) Issue(accountID uuid.UUID, role domain.Role) (string, error) {
	now := i.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token, returning its claims.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return i.Now() }))

	if err != nil {
		return nil, &domain.InvalidCredentialsError{}
	}
	if !tok.Valid {
		return nil, &domain.InvalidCredentialsError{}
	}

	return claims, nil
}

// AccountID returns the subject claim parsed as an account identifier.
func (c *Claims) AccountID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}
