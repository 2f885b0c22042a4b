// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RequestContext captures who issued a mutation, through which source and
// when. The mutation engine stamps date_modified with Time instead of
// reading the wall clock, so a mutation is reproducible in tests.
type RequestContext struct {
	// SessionID identifies the authenticated session. It is the key into the
	// data-key session store.
	SessionID string

	// SourceID identifies the originating client or connection (for example
	// the inbound trace id).
	SourceID string

	// Time is the logical time of the request.
	Time time.Time
}

// At returns Time, or fallback when Time is unset.
func (r RequestContext) At(fallback time.Time) time.Time {
	if r.Time.IsZero() {
		return fallback
	}
	return r.Time
}
