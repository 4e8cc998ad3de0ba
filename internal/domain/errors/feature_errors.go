package errors

import "errors"

var (
	// ErrFeatureNotFound indicates an unknown feature key.
	ErrFeatureNotFound = errors.New("feature not found")

	// ErrDependencyCycle indicates the feature dependency chain loops.
	ErrDependencyCycle = errors.New("feature dependency cycle")
)
