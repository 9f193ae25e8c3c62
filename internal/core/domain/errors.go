// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account locked")
	ErrInvalidLoan        = errors.New("loan amount, interest rate and tenure must be positive")
)

// LoginError describes a rejected login attempt.
type LoginError struct {
	Err               error
	AttemptsRemaining int
	LockedFor         time.Duration
}

func (e *LoginError) Error() string {
	if errors.Is(e.Err, ErrAccountLocked) {
		return fmt.Sprintf("account locked, try again in %d minutes", e.RemainingMinutes())
	}
	return fmt.Sprintf("invalid credentials, %d attempt(s) remaining", e.AttemptsRemaining)
}

func (e *LoginError) Unwrap() error { return e.Err }

// RemainingMinutes rounds the lockout down to whole minutes.
func (e *LoginError) RemainingMinutes() int {
	return int(e.LockedFor / time.Minute)
}
