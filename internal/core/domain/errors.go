package domain

import "errors"

var (
	// ErrResourceNotFound is returned when a Person or Book lookup by ID
	// matches no record.
	ErrResourceNotFound = errors.New("no records found for this id")

	// ErrRequiredObjectIsNull is returned when a create or update is
	// invoked without a payload.
	ErrRequiredObjectIsNull = errors.New("it is not allowed to persist a null object")

	// ErrUnsupportedMathOperation is returned when a math endpoint
	// receives a non-numeric operand.
	ErrUnsupportedMathOperation = errors.New("please set a numeric value")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTooManyAttempts    = errors.New("too many signin attempts")

	ErrFileNotFound = errors.New("file not found")
	ErrFileStorage  = errors.New("could not store file")
)
