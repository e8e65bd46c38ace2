package auth

import (
	"fmt"
	"sync"

	"auction-room/internal/auctionerrors"
)

// Principal is the identity a validated room credential resolves to.
type Principal struct {
	UserID   string
	Username string
	Admin    bool
}

// TokenValidator authenticates room-join credentials. Identity management
// itself lives outside this system; the room only needs a yes/no plus the
// principal behind the token.
type TokenValidator interface {
	Validate(token string) (Principal, error)
}

// StaticValidator validates against a fixed token table, typically seeded
// from configuration. Suitable for development and tests.
type StaticValidator struct {
	mu     sync.RWMutex
	tokens map[string]Principal
}

// NewStaticValidator creates a validator over the given token table.
func NewStaticValidator(tokens map[string]Principal) *StaticValidator {
	if tokens == nil {
		tokens = make(map[string]Principal)
	}
	return &StaticValidator{tokens: tokens}
}

// Validate resolves the token or fails with ErrAuthFailed.
func (v *StaticValidator) Validate(token string) (Principal, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	p, ok := v.tokens[token]
	if !ok {
		return Principal{}, fmt.Errorf("validate token: %w", auctionerrors.ErrAuthFailed)
	}
	return p, nil
}

// Add registers a token at runtime. Used by tests and the mock setup path.
func (v *StaticValidator) Add(token string, p Principal) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tokens[token] = p
}
