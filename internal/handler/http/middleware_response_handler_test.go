package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.True(t, w.wroteHeader)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_Write_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		header       int
		writes       []string
		expectedSize int
		expectedCode int
	}{
		{name: "implicit 200", writes: []string{"hello"}, expectedSize: 5, expectedCode: http.StatusOK},
		{name: "accumulates size", writes: []string{"ab", "cde", ""}, expectedSize: 5, expectedCode: http.StatusOK},
		{name: "explicit status kept", header: http.StatusAccepted, writes: []string{"x"}, expectedSize: 1, expectedCode: http.StatusAccepted},
		{name: "no writes", header: http.StatusNoContent, expectedCode: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			if tt.header != 0 {
				w.WriteHeader(tt.header)
			}
			for _, s := range tt.writes {
				_, err := w.Write([]byte(s))
				require.NoError(t, err)
			}

			assert.Equal(t, tt.expectedSize, w.size)
			assert.Equal(t, tt.expectedCode, w.status)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestResponseWriter_Flush(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	var _ http.Flusher = w
	w.Flush()
	w.Flush()

	assert.True(t, rr.Flushed)
	assert.Equal(t, 2, w.flushes)
	assert.Equal(t, http.StatusOK, w.status)
}

type plainWriter struct {
	http.ResponseWriter
}

func TestResponseWriter_Flush_UnderlyingCannotFlush(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: plainWriter{rr}}

	assert.NotPanics(t, w.Flush)
	assert.Zero(t, w.flushes)
	assert.False(t, rr.Flushed)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	assert.Same(t, rr, w.Unwrap())
	assert.NoError(t, http.NewResponseController(w).Flush())
	assert.True(t, rr.Flushed)
}
