package internal

import (
	"context"
	"time"
)

// Role values are drawn from a fixed enumeration; anything else is rejected
// by the store-level CHECK constraint.
const (
	RoleInspector = "inspector"
	RoleManager   = "manager"
	RoleAdmin     = "admin"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleInspector, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Identity is the resolved caller attached to a request context by the
// auth middleware. It never carries the password hash.
type Identity struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type ctxKey string

const ContextIdentityKey ctxKey = "identity"

func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	if ctx == nil {
		return nil, false
	}
	ident, ok := ctx.Value(ContextIdentityKey).(*Identity)
	return ident, ok
}

func ContextWithIdentity(ctx context.Context, ident *Identity) context.Context {
	return context.WithValue(ctx, ContextIdentityKey, ident)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if
// duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
