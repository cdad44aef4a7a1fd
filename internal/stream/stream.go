package stream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/models"
)

const readBufferSize = 4096

// Option customises a [Stream].
type Option func(*Stream)

// WithErrorMapper sets the function applied to read errors other than EOF,
// e.g. to classify them as transport failures or timeouts.
func WithErrorMapper(fn func(error) error) Option {
	return func(s *Stream) {
		s.mapErr = fn
	}
}

// Stream yields the events of one recommendation request in arrival order.
//
// Recv is meant to be called from a single goroutine. Close may be called
// from any goroutine, any number of times.
type Stream struct {
	body    io.ReadCloser
	decoder *Decoder
	buf     []byte
	pending []models.StreamEvent

	// err is sticky: once set, every Recv returns it.
	err error

	closed    atomic.Bool
	closeOnce sync.Once
	stopWatch func() bool

	mapErr func(error) error
	logger *logger.Logger
}

// New starts decoding body. The body is closed when a terminal event is
// delivered, when reading fails, on Close, or when ctx is done.
func New(ctx context.Context, body io.ReadCloser, log *logger.Logger, opts ...Option) *Stream {
	s := &Stream{
		body:    body,
		decoder: NewDecoder(),
		buf:     make([]byte, readBufferSize),
		mapErr:  func(err error) error { return err },
		logger:  log,
	}
	for _, opt := range opts {
		opt(s)
	}

	// the callback may run before New returns, so it must not touch stopWatch
	s.stopWatch = context.AfterFunc(ctx, func() {
		s.closed.Store(true)
		_ = s.closeBody()
	})

	return s
}

// Recv returns the next event. After the terminal event it returns io.EOF.
// It returns [ErrUnexpectedEOF] when the body ends early and [ErrClosed]
// once the stream was closed or its context cancelled.
func (s *Stream) Recv() (models.StreamEvent, error) {
	for {
		if s.closed.Load() {
			return models.StreamEvent{}, ErrClosed
		}

		// events decoded from the last read go out before any sticky error
		if len(s.pending) > 0 {
			event := s.pending[0]
			s.pending = s.pending[1:]
			if event.IsTerminal() {
				s.pending = nil
				s.finish(io.EOF)
			}
			return event, nil
		}

		if s.err != nil {
			return models.StreamEvent{}, s.err
		}

		n, err := s.body.Read(s.buf)
		if n > 0 {
			s.consume(s.buf[:n])
		}
		if err == nil {
			continue
		}

		switch {
		case s.closed.Load():
			return models.StreamEvent{}, ErrClosed
		case errors.Is(err, io.EOF):
			if dropped := s.decoder.Buffered(); dropped > 0 {
				s.logger.Debug().Int("bytes", dropped).Msg("discarding incomplete trailing frame")
			}
			s.finish(ErrUnexpectedEOF)
		default:
			s.finish(s.mapErr(err))
		}
	}
}

// Close releases the response body. It is safe to call more than once.
func (s *Stream) Close() error {
	s.closed.Store(true)
	return s.release()
}

func (s *Stream) finish(err error) {
	s.err = err
	_ = s.release()
}

// release is only called from goroutines that obtained s from New.
func (s *Stream) release() error {
	if s.stopWatch != nil {
		s.stopWatch()
	}
	return s.closeBody()
}

func (s *Stream) closeBody() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.body.Close()
	})
	return err
}

func (s *Stream) consume(chunk []byte) {
	for _, payload := range s.decoder.Feed(chunk) {
		var event models.StreamEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			s.logger.Warn().Err(err).Bytes("frame", payload).Msg("dropping malformed stream frame")
			continue
		}
		s.pending = append(s.pending, event)
	}
}
