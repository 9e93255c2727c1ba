package errors

import "errors"

// Common application errors
var (
	// ErrNotFound is returned when a record or resource does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized is returned for authentication failures.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation is returned for invalid input.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownUser is returned when a user answer references a user that
	// does not exist. This is a defect in the upstream data and scoring
	// fails fast instead of guessing.
	ErrUnknownUser = errors.New("answer references unknown user")

	// ErrEmptyPackage is returned when a package has no scorable subtest.
	ErrEmptyPackage = errors.New("package has no questions to score")
)
