package service

import (
	"strings"

	"github.com/codedjade003/photobook-server/internal/utils"
)

// DevOverrideGuard is a break-glass authorization path independent of the
// token system: a single shared secret, stored as a bcrypt hash in
// configuration, bypasses self-or-owner checks on destructive operations.
// It can never be derived from a normal user token.
type DevOverrideGuard struct {
	secretHash string
	hasher     *utils.PasswordHasher
}

// NewDevOverrideGuard creates a guard for the configured secret hash. An
// empty hash disables the bypass entirely (fail closed).
func NewDevOverrideGuard(secretHash string, hasher *utils.PasswordHasher) *DevOverrideGuard {
	return &DevOverrideGuard{
		secretHash: secretHash,
		hasher:     hasher,
	}
}

// HasDevOverride reports whether the provided plaintext secret matches the
// configured hash. No configured hash or no provided secret means no
// override, regardless of what the caller guessed.
func (g *DevOverrideGuard) HasDevOverride(provided string) bool {
	provided = strings.TrimSpace(provided)
	if g.secretHash == "" || provided == "" {
		return false
	}
	return g.hasher.Verify(g.secretHash, provided)
}
