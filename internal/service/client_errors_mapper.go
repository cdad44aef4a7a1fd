// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/reco-chat/internal/adapter"
	"github.com/MKhiriev/reco-chat/internal/stream"
)

// User-facing texts of the error taxonomy.
const (
	MsgTransport       = "Cannot reach the recommendation server. Check that it is running."
	MsgTimeout         = "The recommendation server took too long to answer. Please try again."
	MsgUnexpectedEnd   = "The connection closed before the recommendation finished. Please try again."
	MsgMalformed       = "The recommendation server sent a response that could not be read."
	MsgBadStatus       = "The recommendation server could not process the request."
	MsgBusy            = "The recommendation server is busy. Please wait a moment and try again."
	MsgCancelled       = "Request cancelled."
	MsgEmptyQuery      = "Please type what you are looking for."
	MsgUnexpectedError = "Something went wrong. Please try again."
)

// UserMessage translates an error from the service layer into the text shown
// in the conversation. Backend-reported errors are shown verbatim.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var backendErr *adapter.BackendError
	switch {
	case errors.As(err, &backendErr):
		return backendErr.Error()
	case errors.Is(err, ErrEmptyQuery), errors.Is(err, ErrEmptyMessage):
		return MsgEmptyQuery
	case errors.Is(err, context.Canceled), errors.Is(err, stream.ErrClosed):
		return MsgCancelled
	case errors.Is(err, adapter.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return MsgTimeout
	case errors.Is(err, adapter.ErrTransport):
		return MsgTransport
	case errors.Is(err, stream.ErrUnexpectedEOF):
		return MsgUnexpectedEnd
	case errors.Is(err, adapter.ErrMalformedPayload):
		return MsgMalformed
	case errors.Is(err, adapter.ErrTooManyRequests), errors.Is(err, adapter.ErrServiceUnavailable):
		return MsgBusy
	case errors.Is(err, adapter.ErrUnexpectedStatus):
		return MsgBadStatus
	default:
		return MsgUnexpectedError
	}
}

// EventError converts a terminal error event into an error value.
func EventError(message string) error {
	return adapter.NewBackendError(message)
}
