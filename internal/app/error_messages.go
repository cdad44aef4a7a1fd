// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the stub
// backend handlers and middleware.
//
// All Msg* constants are human-readable strings written into the "detail"
// field of error responses or into log entries. Keeping them in one place
// keeps the wording of the API consistent.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "request body is not valid JSON"

	// MsgEmptySearchQuery is returned when a recommendation request has a
	// blank search_query.
	MsgEmptySearchQuery = "search_query must not be empty"

	// MsgInvalidPaging is returned when skip or limit of a history listing
	// is not a non-negative integer.
	MsgInvalidPaging = "skip and limit must be non-negative integers"

	// MsgServiceBusy is returned when the stub refuses a request on purpose.
	MsgServiceBusy = "recommendation service is busy, try again later"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not Found"

	// MsgMethodNotAllowed is returned for a known route with the wrong method.
	MsgMethodNotAllowed = "Method Not Allowed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
