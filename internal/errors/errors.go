package errors

import (
	"errors"
	"fmt"
)

// Common error types for the session client
var (
	// Request errors
	ErrRequestFailed   = errors.New("request failed")
	ErrInvalidResponse = errors.New("invalid response")

	// Token errors
	ErrEmptyToken    = errors.New("invalid token specified: missing token")
	ErrTokenDecode   = errors.New("invalid token specified")
	ErrTokenNotFound = errors.New("token not found")
	ErrTokenSign     = errors.New("failed to sign token")

	// User errors
	ErrEmailTaken         = errors.New("email taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	// Navigation errors
	ErrHistoryNotFound = errors.New("history not found")

	// General errors
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
