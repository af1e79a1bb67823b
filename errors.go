package tracker

import "errors"

// Sentinel errors for every recoverable failure a command can hit.
// The CLI matches them with errors.Is to decide what to print; none of them
// terminates the session.
var (
	ErrDuplicateCategory  = errors.New("category already exists")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrUnknownTransaction = errors.New("unknown transaction")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidRecurrence  = errors.New("invalid recurrence")
	ErrInvalidFilter      = errors.New("invalid filter")
	ErrPersistence        = errors.New("persistence failure")
)
