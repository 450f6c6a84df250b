package user

import (
	"strings"
	"time"

	"fintrack/internal/shared/apperr"
)

// Domain errors
var (
	ErrNotFound   = apperr.NotFound("User not found")
	ErrEmailTaken = apperr.Conflict("User with this email already exists")
)

// User is the account-owner identity. PasswordHash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// View is the public user shape returned by the auth endpoints.
type View struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Public returns the user view without the creation timestamp (signup/login
// shape).
func (u *User) Public() View {
	return View{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Profile returns the user view including the creation timestamp (/me shape).
func (u *User) Profile() View {
	createdAt := u.CreatedAt
	return View{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: &createdAt}
}

// CreateParams contains parameters for creating a new user. Email must
// already be normalized and PasswordHash already hashed.
type CreateParams struct {
	Name         string
	Email        string
	PasswordHash string
}

// NormalizeEmail lowercases and trims an email address so that uniqueness
// checks and lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
