package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies domain errors.
type ErrorType string

const (
	// ErrorTypeValidation indicates a validation failure.
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeNotFound indicates a resource could not be found.
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypePrivilege indicates the process lacks the required privileges.
	ErrorTypePrivilege ErrorType = "PRIVILEGE"

	// ErrorTypeSystem indicates a system-level error.
	ErrorTypeSystem ErrorType = "SYSTEM"

	// ErrorTypeNetwork indicates a network configuration error.
	ErrorTypeNetwork ErrorType = "NETWORK"

	// ErrorTypeTimeout indicates a timeout.
	ErrorTypeTimeout ErrorType = "TIMEOUT"

	// ErrorTypeVerification indicates a post-change verification mismatch.
	ErrorTypeVerification ErrorType = "VERIFICATION"
)

// DomainError is a domain-level error.
type DomainError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is compares errors by type.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// Constructors

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *DomainError {
	return &DomainError{
		Type:    ErrorTypeValidation,
		Message: message,
		Cause:   cause,
	}
}

// NewNotFoundError creates a not-found error.
func NewNotFoundError(message string) *DomainError {
	return &DomainError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewPrivilegeError creates a missing-privilege error.
func NewPrivilegeError(message string) *DomainError {
	return &DomainError{
		Type:    ErrorTypePrivilege,
		Message: message,
	}
}

// NewSystemError creates a system error.
func NewSystemError(message string, cause error) *DomainError {
	return &DomainError{
		Type:    ErrorTypeSystem,
		Message: message,
		Cause:   cause,
	}
}

// NewNetworkError creates a network configuration error.
func NewNetworkError(message string, cause error) *DomainError {
	return &DomainError{
		Type:    ErrorTypeNetwork,
		Message: message,
		Cause:   cause,
	}
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(message string) *DomainError {
	return &DomainError{
		Type:    ErrorTypeTimeout,
		Message: message,
	}
}

// NewVerificationError creates a verification mismatch error.
func NewVerificationError(message string, cause error) *DomainError {
	return &DomainError{
		Type:    ErrorTypeVerification,
		Message: message,
		Cause:   cause,
	}
}

// Type predicates

// IsValidationError checks whether err is a validation error.
func IsValidationError(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

// IsNotFoundError checks whether err is a not-found error.
func IsNotFoundError(err error) bool {
	return hasType(err, ErrorTypeNotFound)
}

// IsPrivilegeError checks whether err is a missing-privilege error.
func IsPrivilegeError(err error) bool {
	return hasType(err, ErrorTypePrivilege)
}

// IsSystemError checks whether err is a system error.
func IsSystemError(err error) bool {
	return hasType(err, ErrorTypeSystem)
}

// IsNetworkError checks whether err is a network configuration error.
func IsNetworkError(err error) bool {
	return hasType(err, ErrorTypeNetwork)
}

// IsTimeoutError checks whether err is a timeout error.
func IsTimeoutError(err error) bool {
	return hasType(err, ErrorTypeTimeout)
}

// IsVerificationError checks whether err is a verification mismatch error.
func IsVerificationError(err error) bool {
	return hasType(err, ErrorTypeVerification)
}

func hasType(err error, errorType ErrorType) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type == errorType
	}
	return false
}
