package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aramistech/aramistech-website/internal/contact/domain"
	"github.com/aramistech/aramistech-website/internal/database"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type submissionStore struct {
	db database.Service
}

func NewSubmissionRepository(db database.Service) SubmissionRepository {
	return &submissionStore{db: db}
}

func (s *submissionStore) CreateSubmission(ctx context.Context, sub *domain.Submission) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}

	query := sq.Insert("contact_submissions").
		Columns("id", "kind", "name", "email", "phone", "company", "service", "budget", "message", "created_at").
		Values(sub.ID, sub.Kind, sub.Name, sub.Email, sub.Phone, sub.Company, sub.Service, sub.Budget, sub.Message, sub.CreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.Pool().Exec(ctx, sqlStr, args...)
	return err
}

func (s *submissionStore) ListSubmissions(ctx context.Context, kind domain.SubmissionKind, limit, offset uint64) ([]domain.Submission, error) {
	query := sq.Select("id", "kind", "name", "email", "phone", "company", "service", "budget", "message", "created_at").
		From("contact_submissions").
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		PlaceholderFormat(sq.Dollar)

	if kind != "" {
		query = query.Where(sq.Eq{"kind": kind})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Pool().Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []domain.Submission
	for rows.Next() {
		var sub domain.Submission
		err := rows.Scan(
			&sub.ID,
			&sub.Kind,
			&sub.Name,
			&sub.Email,
			&sub.Phone,
			&sub.Company,
			&sub.Service,
			&sub.Budget,
			&sub.Message,
			&sub.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, sub)
	}

	return submissions, rows.Err()
}

func (s *submissionStore) GetSubmissionByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	query := sq.Select("id", "kind", "name", "email", "phone", "company", "service", "budget", "message", "created_at").
		From("contact_submissions").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var sub domain.Submission
	err = s.db.Pool().QueryRow(ctx, sqlStr, args...).Scan(
		&sub.ID,
		&sub.Kind,
		&sub.Name,
		&sub.Email,
		&sub.Phone,
		&sub.Company,
		&sub.Service,
		&sub.Budget,
		&sub.Message,
		&sub.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, err
	}

	return &sub, nil
}

func (s *submissionStore) DeleteSubmission(ctx context.Context, id uuid.UUID) error {
	query := sq.Delete("contact_submissions").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	commandTag, err := s.db.Pool().Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	if commandTag.RowsAffected() == 0 {
		return domain.ErrSubmissionNotFound
	}

	return nil
}
