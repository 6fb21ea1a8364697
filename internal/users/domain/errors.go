package domain

import "errors"

var (
	ErrUserNotFound               = errors.New("user not found")
	ErrInvalidUserID              = errors.New("invalid user ID")
	ErrInvalidEmail               = errors.New("invalid email")
	ErrInvalidCurrentPassword     = errors.New("current password is incorrect")
	ErrPasswordVerificationFailed = errors.New("password verification failed")
	ErrPasswordProcessingFailed   = errors.New("password processing failed")
	ErrUserUpdateFailed           = errors.New("failed to update user")
	ErrTwoFactorNotEnabled        = errors.New("two-factor authentication is not enabled")
	ErrTwoFactorAlreadyEnabled    = errors.New("two-factor authentication is already enabled")
	ErrInvalidTwoFactorCode       = errors.New("invalid authentication code")
)
