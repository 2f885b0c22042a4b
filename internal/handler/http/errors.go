// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrTokenIsExpired is returned when the session token is past its exp claim.
	ErrTokenIsExpired = errors.New("session token is expired")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
