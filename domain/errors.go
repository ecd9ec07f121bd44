package domain

import "errors"

var (
	// ErrNotFound is returned when the collaborator reports no such post
	ErrNotFound = errors.New("post not found")

	// ErrNetwork wraps any rejected fetch or write
	ErrNetwork = errors.New("network failure")

	// ErrValidation is returned for empty comment text; no request is issued
	ErrValidation = errors.New("comment contents are empty")

	// ErrUserDeclined is returned when a delete confirmation is declined
	ErrUserDeclined = errors.New("declined by user")
)
