// Package session provides access to the authenticated user of a request.
// It is the contract between the auth collaborator and the domain layer:
// a missing session means "no data" for reads and a hard failure for writes.
package session

import (
	"context"
)

// Session contains authenticated user information.
type Session struct {
	UserID string
	Email  string
	Name   string
}

type sessionKey struct{}

// WithUser adds the session to the context.
func WithUser(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// User returns the session from the context, or nil when unauthenticated.
func User(ctx context.Context) *Session {
	if v, ok := ctx.Value(sessionKey{}).(*Session); ok {
		return v
	}
	return nil
}

// UserID returns the current user id or an empty string.
func UserID(ctx context.Context) string {
	if s := User(ctx); s != nil {
		return s.UserID
	}
	return ""
}

// Email returns the current user email or an empty string.
func Email(ctx context.Context) string {
	if s := User(ctx); s != nil {
		return s.Email
	}
	return ""
}
