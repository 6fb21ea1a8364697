package repository

import (
	"context"
	"errors"

	"github.com/aramistech/aramistech-website/internal/auth/domain"
	"github.com/aramistech/aramistech-website/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserStore struct {
	db database.Service
}

func NewUserStore(db database.Service) UserRepository {
	return &UserStore{
		db: db,
	}
}

func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*domain.UserAuth, error) {
	query := `SELECT id, email, password_hash, first_name, last_name,
			         last_login_at, is_active, two_factor_enabled
			  FROM users WHERE email = $1 AND is_active = true`

	user := &domain.UserAuth{}
	err := s.db.Pool().QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.LastLoginAt,
		&user.IsActive,
		&user.TwoFactorEnabled,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (s *UserStore) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.UserAuth, error) {
	query := `SELECT id, email, password_hash, first_name, last_name,
			         last_login_at, is_active, two_factor_enabled
			  FROM users WHERE id = $1`

	user := &domain.UserAuth{}
	err := s.db.Pool().QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.LastLoginAt,
		&user.IsActive,
		&user.TwoFactorEnabled,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (s *UserStore) UpdateLastLoginAt(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE users SET last_login_at = NOW(), updated_at = NOW() WHERE id = $1`

	_, err := s.db.Pool().Exec(ctx, query, userID)
	return err
}

func (s *UserStore) CreateSession(ctx context.Context, session *domain.Session) error {
	query := `INSERT INTO sessions (user_id, session_token, ip_address, user_agent, expires_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.Pool().Exec(ctx, query,
		session.UserID,
		session.SessionToken,
		session.IpAddress,
		session.UserAgent,
		session.ExpiresAt,
		session.CreatedAt,
	)
	return err
}

func (s *UserStore) GetSessionByToken(ctx context.Context, token string) (*domain.Session, error) {
	query := `SELECT id, user_id, session_token, ip_address, user_agent, expires_at, created_at
			  FROM sessions WHERE session_token = $1 AND expires_at > NOW()`

	session := &domain.Session{}
	err := s.db.Pool().QueryRow(ctx, query, token).Scan(
		&session.ID,
		&session.UserID,
		&session.SessionToken,
		&session.IpAddress,
		&session.UserAgent,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (s *UserStore) DeleteSessionByToken(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE session_token = $1`

	commandTag, err := s.db.Pool().Exec(ctx, query, token)
	if err != nil {
		return err
	}

	if commandTag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

func (s *UserStore) DeleteAllSessionsByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM sessions WHERE user_id = $1`

	_, err := s.db.Pool().Exec(ctx, query, userID)
	return err
}

func (s *UserStore) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at < NOW()`

	commandTag, err := s.db.Pool().Exec(ctx, query)
	if err != nil {
		return 0, err
	}

	return commandTag.RowsAffected(), nil
}

// Two Factor methods

func (s *UserStore) GetTwoFactor(ctx context.Context, userID uuid.UUID) (*domain.TwoFactor, error) {
	query := `SELECT user_id, encrypted_secret, backup_codes, enabled_at, created_at, updated_at
			  FROM user_two_factor WHERE user_id = $1`

	twoFactor := &domain.TwoFactor{}
	err := s.db.Pool().QueryRow(ctx, query, userID).Scan(
		&twoFactor.UserID,
		&twoFactor.EncryptedSecret,
		&twoFactor.BackupCodes,
		&twoFactor.EnabledAt,
		&twoFactor.CreatedAt,
		&twoFactor.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTwoFactorNotEnabled
		}
		return nil, err
	}

	return twoFactor, nil
}

// ConsumeBackupCode removes code from the user's backup codes in a single
// conditional UPDATE. The code must still be present for any row to match,
// so two concurrent logins spending the same code cannot both succeed: the
// loser sees zero rows affected and reports false.
func (s *UserStore) ConsumeBackupCode(ctx context.Context, userID uuid.UUID, code string) (bool, error) {
	query := `UPDATE user_two_factor
			  SET backup_codes = array_remove(backup_codes, $2), updated_at = NOW()
			  WHERE user_id = $1 AND $2 = ANY(backup_codes)`

	commandTag, err := s.db.Pool().Exec(ctx, query, userID, code)
	if err != nil {
		return false, err
	}

	return commandTag.RowsAffected() == 1, nil
}
