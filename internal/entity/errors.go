package entity

import "errors"

// Sentinel errors surfaced to callers. The server error middleware maps these
// to HTTP status codes; services wrap them with context via fmt.Errorf("%w").
var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidScore      = errors.New("technical score must be an integer between 1 and 10")
	ErrNotFound          = errors.New("record not found")
	ErrProvider          = errors.New("ranking provider failed")
	ErrApplyLimit        = errors.New("daily application limit reached")
	ErrDuplicateApply    = errors.New("application already exists for this job")
)
