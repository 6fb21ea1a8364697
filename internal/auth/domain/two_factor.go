package domain

import (
	"time"

	"github.com/google/uuid"
)

// TwoFactor is the stored 2FA state for one account. The TOTP secret is
// AES-GCM encrypted at rest (pkg/crypto); BackupCodes hold the unspent
// single-use codes, uppercase hex, removed one by one as they are consumed.
//
// Invariant: a row exists for a user exactly when users.two_factor_enabled
// is true; enable and disable touch both inside one transaction.
type TwoFactor struct {
	UserID          uuid.UUID
	EncryptedSecret string
	BackupCodes     []string
	EnabledAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
