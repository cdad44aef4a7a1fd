package stream

import "errors"

var (
	// ErrUnexpectedEOF is returned when the body ends before a complete or
	// error event arrived.
	ErrUnexpectedEOF = errors.New("stream ended without a terminal event")
	// ErrClosed is returned by Recv after Close or after the stream context
	// was cancelled.
	ErrClosed = errors.New("stream closed")
)
