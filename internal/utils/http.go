package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrStreamingUnsupported is returned by [WriteEvent] when the response
// writer cannot flush partial output.
var ErrStreamingUnsupported = errors.New("response writer does not support flushing")

// WriteJSON marshals data and writes it with the given status code and a
// JSON content type. It returns the number of body bytes written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// PrepareEventStream sets the headers of a server-sent-event response and
// writes the 200 status line.
func PrepareEventStream(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
}

// WriteEvent writes data as one `data: <json>\n\n` frame and flushes it.
func WriteEvent(w http.ResponseWriter, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error writing event to JSON: %w", err)
	}

	return WriteEventData(w, jsonData)
}

// WriteEventData writes payload verbatim as one frame and flushes it.
func WriteEventData(w http.ResponseWriter, payload []byte) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return ErrStreamingUnsupported
	}

	if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		return fmt.Errorf("error writing event: %w", err)
	}
	flusher.Flush()

	return nil
}
