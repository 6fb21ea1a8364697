package repository

import (
	"context"

	"github.com/aramistech/aramistech-website/internal/users/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=../test/mock_user_repository.go -package=test github.com/aramistech/aramistech-website/internal/users/repository UserRepository
type UserRepository interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	EnableTwoFactor(ctx context.Context, userID uuid.UUID, secret string, backupCodes []string) error
	DisableTwoFactor(ctx context.Context, userID uuid.UUID) error
	GetUserTwoFactorSecret(ctx context.Context, userID uuid.UUID) (string, error)
}
