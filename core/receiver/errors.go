package receiver

import (
	"errors"
	"fmt"
)

var (
	// ErrConflictingFlags is returned when two mutually exclusive exposure
	// flags are set on the same registration.
	ErrConflictingFlags = errors.New("conflicting exposure flags")

	// ErrMissingExposure is returned when a registration specifies neither
	// Exported nor NotExported.
	ErrMissingExposure = errors.New("missing exposure flag")
)

// PermissionRequiredError is returned when a not-exported registration needs
// the application's dynamic-receiver permission and the current process does
// not hold it. The permission must be declared in the application's static
// manifest; this library can only detect its absence.
type PermissionRequiredError struct {
	// Permission is the exact permission string that must be declared.
	Permission string
}

// Error implements the error interface.
func (e *PermissionRequiredError) Error() string {
	return fmt.Sprintf("permission %s is required to receive broadcasts, please add it to your manifest", e.Permission)
}
