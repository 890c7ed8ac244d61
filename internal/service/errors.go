package service

import "errors"

// Common service errors
var (
	ErrEmptyBank = errors.New("no questions available")
)
