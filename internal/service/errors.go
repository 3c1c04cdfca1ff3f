package service

import "errors"

// Sentinel errors for every outcome the handlers recover from. Anything not
// matched by errors.Is against these is an unexpected persistence fault and
// propagates as a request failure.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrValidation         = errors.New("all fields are required")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
)
