package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aramistech/aramistech-website/internal/auth/domain"
	"github.com/aramistech/aramistech-website/internal/auth/repository"
	"github.com/aramistech/aramistech-website/pkg/crypto"
	"github.com/aramistech/aramistech-website/pkg/logger"
	"github.com/aramistech/aramistech-website/pkg/mailer"
	"github.com/aramistech/aramistech-website/pkg/password"
	"github.com/aramistech/aramistech-website/pkg/twofactor"

	"github.com/bluele/gcache"
)

type UserService struct {
	repo   repository.UserRepository
	cache  gcache.Cache
	mailer mailer.Mailer
}

func NewUserService(r repository.UserRepository, m mailer.Mailer) UserUsecase {
	return &UserService{
		repo:   r,
		cache:  gcache.New(100).LRU().Expiration(time.Minute * 15).Build(),
		mailer: m,
	}
}

// LoginUser is the first step of the login sequence. A correct password on
// an account without 2FA authenticates directly; with 2FA enabled it moves
// the attempt to the second-factor step without granting a session.
func (s *UserService) LoginUser(ctx context.Context, input LoginUserInput, userAgent, ipAddress string) (LoginUserOutput, error) {
	user, err := s.verifyPassword(ctx, input.Email, input.Password)
	if err != nil {
		return LoginUserOutput{State: domain.StateRejected}, err
	}

	if user.TwoFactorEnabled {
		return LoginUserOutput{
			State:             domain.StateAwaitingSecondFactor,
			TwoFactorRequired: true,
			Message:           "Two-factor authentication required",
		}, nil
	}

	return s.grantSession(ctx, user, userAgent, ipAddress)
}

// LoginWithTwoFactor is the second step. The client resubmits its
// credentials together with either a 6-digit TOTP token or an 8-character
// backup code; the code's shape decides which verifier runs. A backup code
// is spent atomically before the session is created.
func (s *UserService) LoginWithTwoFactor(ctx context.Context, input TwoFactorLoginInput, userAgent, ipAddress string) (LoginUserOutput, error) {
	user, err := s.verifyPassword(ctx, input.Email, input.Password)
	if err != nil {
		return LoginUserOutput{State: domain.StateRejected}, err
	}

	if !user.TwoFactorEnabled {
		return LoginUserOutput{State: domain.StateRejected}, domain.ErrTwoFactorNotEnabled
	}

	kind := twofactor.ClassifyCode(input.Code)
	if !kind.IsTOTP && !kind.IsBackup {
		return LoginUserOutput{State: domain.StateRejected}, domain.ErrInvalidTwoFactorCode
	}

	record, err := s.repo.GetTwoFactor(ctx, user.ID)
	if err != nil {
		logger.Error("Failed to load two-factor record", "user_id", user.ID.String(), "error", err)
		return LoginUserOutput{State: domain.StateRejected}, domain.ErrInvalidTwoFactorCode
	}

	usedBackupCode := false
	remaining := 0

	switch {
	case kind.IsTOTP:
		secret, err := crypto.DecryptSecret(record.EncryptedSecret)
		if err != nil {
			// Fail closed: a corrupt record reads the same as a wrong code.
			logger.Error("Failed to decrypt TOTP secret", "user_id", user.ID.String(), "error", err)
			return LoginUserOutput{State: domain.StateRejected}, domain.ErrInvalidTwoFactorCode
		}
		if !twofactor.VerifyTOTP(input.Code, secret) {
			return LoginUserOutput{State: domain.StateRejected}, domain.ErrInvalidTwoFactorCode
		}

	case kind.IsBackup:
		code := strings.ToUpper(input.Code)
		if !twofactor.VerifyBackupCode(code, record.BackupCodes) {
			return LoginUserOutput{State: domain.StateRejected}, domain.ErrInvalidTwoFactorCode
		}
		consumed, err := s.repo.ConsumeBackupCode(ctx, user.ID, code)
		if err != nil {
			return LoginUserOutput{State: domain.StateRejected}, fmt.Errorf("failed to consume backup code: %w", err)
		}
		if !consumed {
			// A concurrent login spent this code between the read and the
			// update; the single-use guarantee wins over this attempt.
			return LoginUserOutput{State: domain.StateRejected}, domain.ErrInvalidTwoFactorCode
		}
		usedBackupCode = true
		remaining = len(twofactor.ConsumeBackupCode(code, record.BackupCodes))

		s.mailer.SendMailAsync(user.Email, "backup-code-used", map[string]any{
			"NAME":      user.FirstName + " " + user.LastName,
			"REMAINING": remaining,
		}, "backup-code-alert")
	}

	output, err := s.grantSession(ctx, user, userAgent, ipAddress)
	if err != nil {
		return output, err
	}

	output.UsedBackupCode = usedBackupCode
	output.BackupCodesRemaining = remaining
	return output, nil
}

func (s *UserService) LogoutUser(ctx context.Context, token string) (LogoutOutput, error) {
	if token == "" {
		logger.Error("Logout attempted with empty token")
		return LogoutOutput{}, domain.ErrInvalidCredentials
	}

	err := s.repo.DeleteSessionByToken(ctx, token)
	if err != nil {
		logger.Error("Failed to delete session during logout")
		return LogoutOutput{}, fmt.Errorf("failed to logout: %w", err)
	}

	return LogoutOutput{Message: "Logged out successfully"}, nil
}

// verifyPassword implements the password transition shared by both login
// steps: unknown email and wrong password are indistinguishable to the
// caller, and repeated failures per email are throttled in-process.
func (s *UserService) verifyPassword(ctx context.Context, email, plaintext string) (*domain.UserAuth, error) {
	attempts, err := s.cache.Get(email)
	if err == nil {
		if attempts.(int) >= domain.MaxLoginAttempts {
			logger.Error("Rate limit exceeded for login attempts")
			return nil, domain.ErrTooManyLoginAttempts
		}
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	passwordMatch, err := password.ComparePassword(user.PasswordHash, plaintext)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !passwordMatch {
		currentAttempts := 1
		if attempts != nil {
			currentAttempts = attempts.(int) + 1
		}

		if err := s.cache.Set(email, currentAttempts); err != nil {
			logger.Error("Cache error updating login attempts")
		}

		return nil, domain.ErrInvalidCredentials
	}

	s.cache.Remove(email)

	return user, nil
}

func (s *UserService) grantSession(ctx context.Context, user *domain.UserAuth, userAgent, ipAddress string) (LoginUserOutput, error) {
	if err := s.repo.UpdateLastLoginAt(ctx, user.ID); err != nil {
		logger.Error("Failed to update last login timestamp", "error", err)
	}

	token, err := domain.GenerateSecureToken()
	if err != nil {
		logger.Error("Failed to generate session token", "error", err)
		return LoginUserOutput{State: domain.StateRejected}, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := &domain.Session{
		UserID:       user.ID,
		SessionToken: token,
		IpAddress:    ipAddress,
		UserAgent:    userAgent,
		ExpiresAt:    time.Now().Add(domain.SessionDurationMinutes * time.Minute),
		CreatedAt:    time.Now(),
	}

	if err := s.repo.CreateSession(ctx, session); err != nil {
		logger.Error("Failed to store session in database")
		return LoginUserOutput{State: domain.StateRejected}, fmt.Errorf("failed to store session: %w", err)
	}

	return LoginUserOutput{
		State: domain.StateAuthenticated,
		User: UserInfo{
			ID:        user.ID.String(),
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
		Session: SessionInfo{
			Token:     session.SessionToken,
			ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
		},
		Message: "Login successful",
	}, nil
}
