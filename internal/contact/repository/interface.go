package repository

import (
	"context"

	"github.com/aramistech/aramistech-website/internal/contact/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=../test/mock_submission_repository.go -package=test github.com/aramistech/aramistech-website/internal/contact/repository SubmissionRepository
type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, sub *domain.Submission) error
	ListSubmissions(ctx context.Context, kind domain.SubmissionKind, limit, offset uint64) ([]domain.Submission, error)
	GetSubmissionByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	DeleteSubmission(ctx context.Context, id uuid.UUID) error
}
