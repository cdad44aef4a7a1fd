// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request validation errors. [statusFromError] maps them onto HTTP codes.
var (
	ErrInvalidJSON      = errors.New("invalid json body")
	ErrEmptySearchQuery = errors.New("empty search query")
	ErrInvalidPaging    = errors.New("invalid paging parameters")
	ErrServiceBusy      = errors.New("service busy")
)
