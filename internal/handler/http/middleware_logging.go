package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/reco-chat/internal/logger"
)

// withLogging writes one access line per request. Event stream responses
// also report how many frames reached the client before the handler returned.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)

		entry := log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int64("request_size", r.ContentLength).
			Int("status", rw.status).
			Int("size", rw.size).
			Dur("duration", time.Since(start))
		if isEventStream(rw.Header()) {
			entry = entry.Int("frames", rw.flushes)
		}
		entry.Msg("request served")
	})
}

func isEventStream(h http.Header) bool {
	return strings.HasPrefix(h.Get("Content-Type"), "text/event-stream")
}
