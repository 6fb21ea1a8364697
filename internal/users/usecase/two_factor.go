package usecase

import (
	"context"
	"errors"
	"strings"

	authdomain "github.com/aramistech/aramistech-website/internal/auth/domain"
	"github.com/aramistech/aramistech-website/internal/users/domain"
	"github.com/aramistech/aramistech-website/pkg/crypto"
	"github.com/aramistech/aramistech-website/pkg/logger"
	"github.com/aramistech/aramistech-website/pkg/twofactor"

	"github.com/google/uuid"
)

// SetupTwoFactor produces a fresh enrollment package for the user. Nothing is
// persisted here: the secret and backup codes only take effect once the user
// confirms with a valid code via EnableTwoFactor.
func (u *userUsecase) SetupTwoFactor(ctx context.Context, userID string) (TwoFactorSetupResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return TwoFactorSetupResponse{}, domain.ErrInvalidUserID
	}

	user, err := u.userRepo.GetUserByID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return TwoFactorSetupResponse{}, domain.ErrUserNotFound
		}
		return TwoFactorSetupResponse{}, err
	}

	if user.TwoFactorEnabled {
		return TwoFactorSetupResponse{}, domain.ErrTwoFactorAlreadyEnabled
	}

	setup, err := twofactor.GenerateSetup(authdomain.TwoFactorIssuer, user.Email)
	if err != nil {
		// Random source failure is fatal; surface it to the operator.
		logger.Error("two-factor provisioning failed", "error", err)
		return TwoFactorSetupResponse{}, err
	}

	return TwoFactorSetupResponse{
		Secret:        setup.Secret,
		EnrollmentURI: setup.OTPAuthURL,
		QRCode:        setup.QRCode,
		BackupCodes:   setup.BackupCodes,
	}, nil
}

// EnableTwoFactor confirms the enrollment started by SetupTwoFactor. The
// client echoes back the secret and backup codes it was shown, along with a
// current code generated from that secret, proving the authenticator was set
// up correctly before anything is stored.
func (u *userUsecase) EnableTwoFactor(ctx context.Context, userID string, req EnableTwoFactorRequest) (EnableTwoFactorResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return EnableTwoFactorResponse{}, domain.ErrInvalidUserID
	}

	user, err := u.userRepo.GetUserByID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return EnableTwoFactorResponse{}, domain.ErrUserNotFound
		}
		return EnableTwoFactorResponse{}, err
	}

	if user.TwoFactorEnabled {
		return EnableTwoFactorResponse{}, domain.ErrTwoFactorAlreadyEnabled
	}

	if !twofactor.VerifyTOTP(req.Code, req.Secret) {
		return EnableTwoFactorResponse{}, domain.ErrInvalidTwoFactorCode
	}

	// Backup codes are stored uppercase; membership checks at login normalize
	// the submitted code the same way.
	backupCodes := make([]string, len(req.BackupCodes))
	for i, code := range req.BackupCodes {
		backupCodes[i] = strings.ToUpper(code)
	}

	err = u.userRepo.EnableTwoFactor(ctx, userUUID, req.Secret, backupCodes)
	if err != nil {
		logger.Error("failed to enable two-factor", "error", err)
		return EnableTwoFactorResponse{}, err
	}

	return EnableTwoFactorResponse{
		Enabled:     true,
		BackupCodes: backupCodes,
	}, nil
}

// DisableTwoFactor removes the stored secret and backup codes after the user
// proves possession of the authenticator with a current code.
func (u *userUsecase) DisableTwoFactor(ctx context.Context, userID string, req DisableTwoFactorRequest) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrInvalidUserID
	}

	user, err := u.userRepo.GetUserByID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if !user.TwoFactorEnabled {
		return domain.ErrTwoFactorNotEnabled
	}

	encryptedSecret, err := u.userRepo.GetUserTwoFactorSecret(ctx, userUUID)
	if err != nil {
		return err
	}

	secret, err := crypto.DecryptSecret(encryptedSecret)
	if err != nil {
		logger.Error("failed to decrypt two-factor secret", "error", err)
		return domain.ErrInvalidTwoFactorCode
	}

	if !twofactor.VerifyTOTP(req.Code, secret) {
		return domain.ErrInvalidTwoFactorCode
	}

	err = u.userRepo.DisableTwoFactor(ctx, userUUID)
	if err != nil {
		logger.Error("failed to disable two-factor", "error", err)
		return err
	}

	return nil
}
