package logic

import "errors"

// Request taxonomy. Handlers map these onto HTTP status codes; logic wraps
// them with a case-specific message via fmt.Errorf("...: %w", Err...).
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrForbidden    = errors.New("not a member of organization")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)
