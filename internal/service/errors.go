package service

import "errors"

var (
	// ErrValidation marks a local precondition failure. It never causes a
	// network call; the offending field is named in the wrapped message.
	ErrValidation = errors.New("validation failed")

	// ErrSubmitInFlight is returned when Submit is called while a
	// previous submission has not settled yet.
	ErrSubmitInFlight = errors.New("submit already in flight")

	// ErrAlreadyLoaded is returned when Load is called a second time on
	// the same retrieval flow.
	ErrAlreadyLoaded = errors.New("note already loaded")

	// ErrInvalidFlowState is returned when an operation is called in a
	// state that does not allow it.
	ErrInvalidFlowState = errors.New("operation not allowed in current flow state")
)
