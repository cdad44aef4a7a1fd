// Package http implements the HTTP surface of the stub recommendation
// backend.
//
// It exposes the same routes as the real service: health, the event-stream
// and bulk recommendation endpoints, chat and history. Request tracing and
// access logging are handled here before requests reach the scripted
// [stub.Backend]. Errors are written as {"detail": "..."} bodies.
package http
