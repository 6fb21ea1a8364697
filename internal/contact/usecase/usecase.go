package usecase

import "context"

//go:generate mockgen -destination=../test/mock_contact_usecase.go -package=test github.com/aramistech/aramistech-website/internal/contact/usecase ContactUsecase
type ContactUsecase interface {
	SubmitContact(ctx context.Context, req ContactRequest) (SubmissionResponse, error)
	SubmitQuote(ctx context.Context, req QuoteRequest) (SubmissionResponse, error)
	SubmitSupportRequest(ctx context.Context, email string, req SupportRequest, priority bool) (SubmissionResponse, error)
	ListSubmissions(ctx context.Context, kind string, page int) ([]SubmissionResponse, error)
	DeleteSubmission(ctx context.Context, id string) error
}
