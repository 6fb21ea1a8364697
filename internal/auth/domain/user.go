package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// UserAuth is the credential view of an admin account. The password hash is
// verified by pkg/password; the 2FA secret and backup codes live in the
// user_two_factor record and only the enabled flag is denormalized here.
type UserAuth struct {
	ID               uuid.UUID
	Email            string
	PasswordHash     string
	FirstName        string
	LastName         string
	LastLoginAt      *time.Time
	IsActive         bool
	TwoFactorEnabled bool
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
