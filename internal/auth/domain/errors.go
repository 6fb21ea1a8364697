package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidTwoFactorCode covers malformed codes, wrong codes and spent
	// backup codes alike; the caller cannot tell which.
	ErrInvalidTwoFactorCode = errors.New("invalid authentication code")

	ErrTwoFactorNotEnabled  = errors.New("two-factor authentication is not enabled")
	ErrTooManyLoginAttempts = errors.New("too many login attempts, please try again later")
	ErrSessionNotFound      = errors.New("session not found")
	ErrUserNotFound         = errors.New("user not found")
)
