package service

import "errors"

var (
	ErrEmptyQuery   = errors.New("empty search query")
	ErrEmptyMessage = errors.New("empty chat message")
)
