package usecase

import "github.com/aramistech/aramistech-website/internal/auth/domain"

type LoginUserInput struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// TwoFactorLoginInput is the second step of a 2FA login. The original
// credentials travel with the code; no challenge state is kept server-side
// between the two steps.
type TwoFactorLoginInput struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
	Code     string `json:"code" form:"code" validate:"required"`
}

type LoginUserOutput struct {
	State             domain.LoginState `json:"state"`
	TwoFactorRequired bool              `json:"two_factor_required,omitempty"`
	User              UserInfo          `json:"user,omitempty"`
	Session           SessionInfo       `json:"session,omitempty"`
	Message           string            `json:"message"`

	// Set only when a backup code was spent on this login.
	UsedBackupCode       bool `json:"used_backup_code,omitempty"`
	BackupCodesRemaining int  `json:"backup_codes_remaining,omitempty"`
}

type UserInfo struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type SessionInfo struct {
	Token     string `json:"token,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

type LogoutOutput struct {
	Message string `json:"message"`
}
