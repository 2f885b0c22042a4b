// Package http implements the HTTP transport of the note store.
//
// It is a thin dispatch adapter: handlers decode the request, build a
// models.RequestContext from the authenticated session and request headers,
// call the note service and map service errors to status codes. Session
// token checks, request tracing, access logging and response compression
// are handled by middleware before requests reach the handlers.
package http
