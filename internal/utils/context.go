// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT session token
// generation and validation, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey is the key under which the auth middleware stores the
// session identifier taken from the session token.
//
//	ctx := context.WithValue(ctx, utils.SessionIDCtxKey, "0190f1c2-...")
var SessionIDCtxKey = contextKey("sessionID")

// TraceIDCtxKey is the key under which the trace middleware stores the
// request trace id.
var TraceIDCtxKey = contextKey("traceID")

// GetSessionIDFromContext retrieves the session identifier from the context.
//
// ok is false when the value is missing, empty or has an unexpected type.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok && sessionID != ""
}

// GetTraceIDFromContext retrieves the request trace id from the context.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
