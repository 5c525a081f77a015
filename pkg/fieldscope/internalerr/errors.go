package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidLexicon = errors.New("invalid lexicon")
	ErrInvalidConfig  = errors.New("invalid configuration")
)
