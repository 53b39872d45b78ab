package controller

import "context"

// TokenHeader is the HTTP header used to transport the lock token.
const TokenHeader = "X-Lock-Token"

type contextKey int

const tokenKey contextKey = 1

// ContextWithLockToken returns a context carrying a lock token.
func ContextWithLockToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// ContextGetLockToken is used to retrieve the lock token from the context.
func ContextGetLockToken(ctx context.Context) string {
	if s, ok := ctx.Value(tokenKey).(string); ok {
		return s
	}
	return ""
}
