// Package session holds the data keys unlocked by authenticated sessions.
//
// Keys live in process memory only. They are bound when a session unlocks
// protected content and evicted explicitly or once their TTL has passed.
// Keys must never be logged or persisted.
package session
