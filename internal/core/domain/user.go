// internal/core/domain/user.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	MaxLoginAttempts = 5
	LockoutDuration  = 15 * time.Minute
)

// User is a marketplace account. Any user can both browse and sell.
type User struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Phone               string     `json:"phone,omitempty"`
	PasswordHash        string     `json:"-"`
	FailedLoginAttempts int        `json:"-"`
	LockedUntil         *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// NormalizeEmail lower-cases and trims an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser builds an account with a hashed password.
func NewUser(name, email, password string) (*User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email, and password are required", ErrInvalidInput)
	}

	u := &User{Name: name, Email: email}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u.ID = uuid.New()
	u.CreatedAt = now
	u.UpdatedAt = now
	return u, nil
}

func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// IsLocked reports whether the lockout is still running at now. An expired
// lockout is cleared along with the failed attempt counter.
func (u *User) IsLocked(now time.Time) bool {
	if u.LockedUntil == nil {
		return false
	}
	if now.Before(*u.LockedUntil) {
		return true
	}
	u.LockedUntil = nil
	u.FailedLoginAttempts = 0
	return false
}

// RegisterFailedLogin counts a bad password and starts a lockout once the
// attempt limit is reached.
func (u *User) RegisterFailedLogin(now time.Time) *LoginError {
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= MaxLoginAttempts {
		until := now.Add(LockoutDuration)
		u.LockedUntil = &until
		return &LoginError{Err: ErrAccountLocked, LockedFor: LockoutDuration}
	}
	return &LoginError{
		Err:               ErrInvalidCredentials,
		AttemptsRemaining: MaxLoginAttempts - u.FailedLoginAttempts,
	}
}

func (u *User) ResetLoginAttempts() {
	u.FailedLoginAttempts = 0
	u.LockedUntil = nil
}

// Session is the single authenticated unit: a token is never valid without
// the user it was issued to.
type Session struct {
	ID        string      `json:"id"`
	Token     string      `json:"token,omitempty"`
	User      SessionUser `json:"user"`
	IssuedAt  time.Time   `json:"issued_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// SessionUser is the public subset of User carried by a session.
type SessionUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func (u *User) SessionUser() SessionUser {
	return SessionUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
