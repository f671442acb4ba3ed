package request

import "errors"

// Request domain errors
var (
	ErrRequestNotFound = errors.New("request not found")
)
