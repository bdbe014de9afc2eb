package core

import (
	"context"
)

type ctxKey int

const requesterCtxKey ctxKey = iota

// RequesterContext returns a child context carrying the authenticated user.
// The requester always travels with the request context; there is no
// process-wide current user.
func RequesterContext(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, requesterCtxKey, user)
}

// RequesterFromContext returns the authenticated user for this request,
// or nil if the request is anonymous.
func RequesterFromContext(ctx context.Context) *User {
	user, ok := ctx.Value(requesterCtxKey).(*User)
	if !ok {
		return nil
	}
	return user
}
