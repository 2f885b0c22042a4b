// Package server runs the HTTP transport of the note store together with
// its background workers, including startup, signal handling and graceful
// shutdown.
package server
