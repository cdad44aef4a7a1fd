package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// StreamEventType discriminates the variants of [StreamEvent].
type StreamEventType string

const (
	StreamEventProgress StreamEventType = "progress"
	StreamEventComplete StreamEventType = "complete"
	StreamEventError    StreamEventType = "error"
)

// ErrUnknownEventType is returned by [StreamEvent.UnmarshalJSON] when the
// frame carries a type outside the known set.
var ErrUnknownEventType = errors.New("unknown stream event type")

// StreamEvent is one decoded frame of the recommendation stream.
//
// Exactly one group of fields is meaningful, selected by Type:
//   - progress: Percent, Message
//   - complete: Results, SessionID
//   - error:    ErrorMessage
type StreamEvent struct {
	Type StreamEventType `json:"type"`

	Percent int    `json:"progress,omitempty"`
	Message string `json:"message,omitempty"`

	Results   []RankedItem `json:"final_item_scores,omitempty"`
	SessionID string       `json:"session_id,omitempty"`

	ErrorMessage string `json:"error_message,omitempty"`
}

// IsTerminal reports whether the event ends the stream.
func (e StreamEvent) IsTerminal() bool {
	return e.Type == StreamEventComplete || e.Type == StreamEventError
}

// UnmarshalJSON decodes a frame payload, rejecting unknown types and clamping
// the progress percentage to 0..100.
func (e *StreamEvent) UnmarshalJSON(b []byte) error {
	type plain StreamEvent
	// progress may arrive as a float; the outer field shadows Percent.
	var raw struct {
		plain
		Progress *float64 `json:"progress"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch raw.Type {
	case StreamEventProgress:
		if raw.Progress != nil && !math.IsNaN(*raw.Progress) {
			raw.plain.Percent = clampPercent(int(math.Round(math.Max(-1, math.Min(101, *raw.Progress)))))
		}
	case StreamEventComplete, StreamEventError:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEventType, raw.Type)
	}

	*e = StreamEvent(raw.plain)
	return nil
}
