package repository

import (
	"context"

	"github.com/aramistech/aramistech-website/internal/auth/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=../test/mock_user_repository.go -package=test github.com/aramistech/aramistech-website/internal/auth/repository UserRepository
type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.UserAuth, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.UserAuth, error)
	UpdateLastLoginAt(ctx context.Context, userID uuid.UUID) error

	CreateSession(ctx context.Context, session *domain.Session) error
	GetSessionByToken(ctx context.Context, token string) (*domain.Session, error)
	DeleteSessionByToken(ctx context.Context, token string) error
	DeleteAllSessionsByUserID(ctx context.Context, userID uuid.UUID) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)

	GetTwoFactor(ctx context.Context, userID uuid.UUID) (*domain.TwoFactor, error)
	ConsumeBackupCode(ctx context.Context, userID uuid.UUID, code string) (bool, error)
}
