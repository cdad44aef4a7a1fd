// Package server runs the HTTP server of the stub backend.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown. In-flight event streams are cancelled when shutdown begins so
// they do not hold the process open for the rest of their script.
package server
