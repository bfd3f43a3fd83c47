package domain

import "errors"

// Sentinel errors wrapped by services with %w. The transport layer matches on
// them with errors.Is to pick a status code; nothing below transport should
// know about HTTP.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
)
