package test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aramistech/aramistech-website/internal/auth/domain"
	"github.com/aramistech/aramistech-website/internal/auth/usecase"
	"github.com/aramistech/aramistech-website/pkg/crypto"
	"github.com/aramistech/aramistech-website/pkg/logger"
	"github.com/aramistech/aramistech-website/pkg/password"

	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeMailer) SendMail(to string, id string, data map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeMailer) SendMailAsync(to string, id string, data map[string]any, operationName string) {
	_ = f.SendMail(to, id, data)
}

func (f *fakeMailer) sentTemplates() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

func newTestUser(t *testing.T, email, plaintext string, twoFactorEnabled bool) *domain.UserAuth {
	t.Helper()
	hash, err := password.HashPassword(plaintext)
	require.NoError(t, err)
	return &domain.UserAuth{
		ID:               uuid.New(),
		Email:            email,
		PasswordHash:     hash,
		FirstName:        "Aramis",
		LastName:         "Figueroa",
		IsActive:         true,
		TwoFactorEnabled: twoFactorEnabled,
	}
}

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger.Init()

	ctx := context.Background()

	t.Run("password only account authenticates directly", func(t *testing.T) {
		mockRepo := NewMockUserRepository(ctrl)
		svc := usecase.NewUserService(mockRepo, &fakeMailer{})
		user := newTestUser(t, "admin@example.com", "Password123!", false)

		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
		mockRepo.EXPECT().UpdateLastLoginAt(gomock.Any(), user.ID).Return(nil)
		mockRepo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil)

		output, err := svc.LoginUser(ctx, usecase.LoginUserInput{Email: user.Email, Password: "Password123!"}, "ua", "127.0.0.1")

		require.NoError(t, err)
		assert.Equal(t, domain.StateAuthenticated, output.State)
		assert.False(t, output.TwoFactorRequired)
		assert.NotEmpty(t, output.Session.Token)
	})

	t.Run("two-factor account gets challenge instead of session", func(t *testing.T) {
		mockRepo := NewMockUserRepository(ctrl)
		svc := usecase.NewUserService(mockRepo, &fakeMailer{})
		user := newTestUser(t, "admin2fa@example.com", "Password123!", true)

		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

		output, err := svc.LoginUser(ctx, usecase.LoginUserInput{Email: user.Email, Password: "Password123!"}, "ua", "127.0.0.1")

		require.NoError(t, err)
		assert.Equal(t, domain.StateAwaitingSecondFactor, output.State)
		assert.True(t, output.TwoFactorRequired)
		assert.Empty(t, output.Session.Token)
	})

	t.Run("wrong password rejected with generic error", func(t *testing.T) {
		mockRepo := NewMockUserRepository(ctrl)
		svc := usecase.NewUserService(mockRepo, &fakeMailer{})
		user := newTestUser(t, "wrongpw@example.com", "Password123!", false)

		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

		output, err := svc.LoginUser(ctx, usecase.LoginUserInput{Email: user.Email, Password: "not-the-password"}, "ua", "127.0.0.1")

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Equal(t, domain.StateRejected, output.State)
	})

	t.Run("unknown email rejected with the same generic error", func(t *testing.T) {
		mockRepo := NewMockUserRepository(ctrl)
		svc := usecase.NewUserService(mockRepo, &fakeMailer{})

		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "nobody@example.com").Return(nil, domain.ErrUserNotFound)

		_, err := svc.LoginUser(ctx, usecase.LoginUserInput{Email: "nobody@example.com", Password: "whatever"}, "ua", "127.0.0.1")

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("repeated failures are throttled", func(t *testing.T) {
		mockRepo := NewMockUserRepository(ctrl)
		svc := usecase.NewUserService(mockRepo, &fakeMailer{})
		user := newTestUser(t, "throttled@example.com", "Password123!", false)

		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil).Times(domain.MaxLoginAttempts)

		for i := 0; i < domain.MaxLoginAttempts; i++ {
			_, err := svc.LoginUser(ctx, usecase.LoginUserInput{Email: user.Email, Password: "bad"}, "ua", "127.0.0.1")
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		}

		_, err := svc.LoginUser(ctx, usecase.LoginUserInput{Email: user.Email, Password: "bad"}, "ua", "127.0.0.1")
		assert.ErrorIs(t, err, domain.ErrTooManyLoginAttempts)
	})
}

func TestLoginWithTwoFactor_TOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger.Init()
	require.NoError(t, crypto.SetEncryptionKey("unit-test-encryption-key-0123456789abcdef"))

	ctx := context.Background()

	key, err := totp.Generate(totp.GenerateOpts{Issuer: "AramisTech", AccountName: "admin@example.com", SecretSize: 20})
	require.NoError(t, err)
	secret := key.Secret()

	encryptedSecret, err := crypto.EncryptSecret(secret)
	require.NoError(t, err)

	user := newTestUser(t, "totp@example.com", "Password123!", true)
	record := &domain.TwoFactor{
		UserID:          user.ID,
		EncryptedSecret: encryptedSecret,
		BackupCodes:     []string{"AAAA1111", "BBBB2222"},
	}

	t.Run("valid current token authenticates", func(t *testing.T) {
		mockRepo := NewMockUserRepository(ctrl)
		svc := usecase.NewUserService(mockRepo, &fakeMailer{})

		code, err := totp.GenerateCode(secret, time.Now())
		require.NoError(t, err)

		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
		mockRepo.EXPECT().GetTwoFactor(gomock.Any(), user.ID).Return(record, nil)
		mockRepo.EXPECT().UpdateLastLoginAt(gomock.Any(), user.ID).Return(nil)
		mockRepo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil)

		output, err := svc.LoginWithTwoFactor(ctx, usecase.TwoFactorLoginInput{
			Email:    user.Email,
			Password: "Password123!",
			Code:     code,
		}, "ua", "127.0.0.1")

		require.NoError(t, err)
		assert.Equal(t, domain.StateAuthenticated, output.State)
		assert.False(t, output.UsedBackupCode)
		assert.NotEmpty(t, output.Session.Token)
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		mockRepo := NewMockUserRepository(ctrl)
		svc := usecase.NewUserService(mockRepo, &fakeMailer{})

		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
		mockRepo.EXPECT().GetTwoFactor(gomock.Any(), user.ID).Return(record, nil)

		output, err := svc.LoginWithTwoFactor(ctx, usecase.TwoFactorLoginInput{
			Email:    user.Email,
			Password: "Password123!",
			Code:     "000000",
		}, "ua", "127.0.0.1")

		assert.ErrorIs(t, err, domain.ErrInvalidTwoFactorCode)
		assert.Equal(t, domain.StateRejected, output.State)
	})

	t.Run("malformed code rejected before any lookup", func(t *testing.T) {
		mockRepo := NewMockUserRepository(ctrl)
		svc := usecase.NewUserService(mockRepo, &fakeMailer{})

		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

		_, err := svc.LoginWithTwoFactor(ctx, usecase.TwoFactorLoginInput{
			Email:    user.Email,
			Password: "Password123!",
			Code:     "abc",
		}, "ua", "127.0.0.1")

		assert.ErrorIs(t, err, domain.ErrInvalidTwoFactorCode)
	})

	t.Run("account without two-factor cannot use step two", func(t *testing.T) {
		mockRepo := NewMockUserRepository(ctrl)
		svc := usecase.NewUserService(mockRepo, &fakeMailer{})
		plainUser := newTestUser(t, "plain@example.com", "Password123!", false)

		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), plainUser.Email).Return(plainUser, nil)

		_, err := svc.LoginWithTwoFactor(ctx, usecase.TwoFactorLoginInput{
			Email:    plainUser.Email,
			Password: "Password123!",
			Code:     "123456",
		}, "ua", "127.0.0.1")

		assert.ErrorIs(t, err, domain.ErrTwoFactorNotEnabled)
	})
}

func TestLoginWithTwoFactor_BackupCodes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger.Init()
	require.NoError(t, crypto.SetEncryptionKey("unit-test-encryption-key-0123456789abcdef"))

	ctx := context.Background()

	user := newTestUser(t, "backup@example.com", "Password123!", true)
	record := &domain.TwoFactor{
		UserID:          user.ID,
		EncryptedSecret: "irrelevant-for-backup-path",
		BackupCodes:     []string{"AAAA1111", "BBBB2222"},
	}

	t.Run("valid backup code authenticates and is consumed", func(t *testing.T) {
		mockRepo := NewMockUserRepository(ctrl)
		mail := &fakeMailer{}
		svc := usecase.NewUserService(mockRepo, mail)

		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
		mockRepo.EXPECT().GetTwoFactor(gomock.Any(), user.ID).Return(record, nil)
		mockRepo.EXPECT().ConsumeBackupCode(gomock.Any(), user.ID, "AAAA1111").Return(true, nil)
		mockRepo.EXPECT().UpdateLastLoginAt(gomock.Any(), user.ID).Return(nil)
		mockRepo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil)

		output, err := svc.LoginWithTwoFactor(ctx, usecase.TwoFactorLoginInput{
			Email:    user.Email,
			Password: "Password123!",
			Code:     "aaaa1111",
		}, "ua", "127.0.0.1")

		require.NoError(t, err)
		assert.Equal(t, domain.StateAuthenticated, output.State)
		assert.True(t, output.UsedBackupCode)
		assert.Equal(t, 1, output.BackupCodesRemaining)
		assert.Contains(t, mail.sentTemplates(), "backup-code-used")
	})

	t.Run("unknown backup code rejected without consuming", func(t *testing.T) {
		mockRepo := NewMockUserRepository(ctrl)
		svc := usecase.NewUserService(mockRepo, &fakeMailer{})

		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
		mockRepo.EXPECT().GetTwoFactor(gomock.Any(), user.ID).Return(record, nil)

		_, err := svc.LoginWithTwoFactor(ctx, usecase.TwoFactorLoginInput{
			Email:    user.Email,
			Password: "Password123!",
			Code:     "CCCC3333",
		}, "ua", "127.0.0.1")

		assert.ErrorIs(t, err, domain.ErrInvalidTwoFactorCode)
	})

	t.Run("code spent by a concurrent login is rejected", func(t *testing.T) {
		mockRepo := NewMockUserRepository(ctrl)
		svc := usecase.NewUserService(mockRepo, &fakeMailer{})

		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
		mockRepo.EXPECT().GetTwoFactor(gomock.Any(), user.ID).Return(record, nil)
		mockRepo.EXPECT().ConsumeBackupCode(gomock.Any(), user.ID, "BBBB2222").Return(false, nil)

		_, err := svc.LoginWithTwoFactor(ctx, usecase.TwoFactorLoginInput{
			Email:    user.Email,
			Password: "Password123!",
			Code:     "BBBB2222",
		}, "ua", "127.0.0.1")

		assert.ErrorIs(t, err, domain.ErrInvalidTwoFactorCode)
	})
}

func TestLogoutUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger.Init()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := NewMockUserRepository(ctrl)
		svc := usecase.NewUserService(mockRepo, &fakeMailer{})

		mockRepo.EXPECT().DeleteSessionByToken(gomock.Any(), "token123").Return(nil)

		output, err := svc.LogoutUser(ctx, "token123")
		require.NoError(t, err)
		assert.Equal(t, "Logged out successfully", output.Message)
	})

	t.Run("empty token rejected", func(t *testing.T) {
		mockRepo := NewMockUserRepository(ctrl)
		svc := usecase.NewUserService(mockRepo, &fakeMailer{})

		_, err := svc.LogoutUser(ctx, "")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
