package shared

import "context"

// Principal is the authenticated identity attached to a request after
// successful token verification. Its role is taken from the token claims,
// not re-read from the store.
type Principal struct {
	UserID   int64
	Username string
	Role     string
}

// IsAdmin reports whether the principal carries the admin role claim.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

type principalContextKey struct{}

// ContextWithPrincipal stores the principal in context.
func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext extracts the principal from context.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(Principal)
	return p, ok
}
