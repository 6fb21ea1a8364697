package usecase

import (
	"context"
	"os"

	"github.com/aramistech/aramistech-website/internal/contact/domain"
	"github.com/aramistech/aramistech-website/internal/contact/repository"
	"github.com/aramistech/aramistech-website/pkg/logger"
	"github.com/aramistech/aramistech-website/pkg/mailer"

	"github.com/google/uuid"
)

const submissionsPerPage = 50

type contactUsecase struct {
	repo   repository.SubmissionRepository
	mailer mailer.Mailer
}

func NewContactUsecase(repo repository.SubmissionRepository, m mailer.Mailer) ContactUsecase {
	return &contactUsecase{
		repo:   repo,
		mailer: m,
	}
}

func (u *contactUsecase) SubmitContact(ctx context.Context, req ContactRequest) (SubmissionResponse, error) {
	sub := &domain.Submission{
		Kind:    domain.KindContact,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
	}

	if err := u.repo.CreateSubmission(ctx, sub); err != nil {
		logger.Error("failed to store contact submission", "error", err)
		return SubmissionResponse{}, err
	}

	u.notify(sub, "contact-notification", "contact submission notification")

	return ToSubmissionResponse(sub), nil
}

func (u *contactUsecase) SubmitQuote(ctx context.Context, req QuoteRequest) (SubmissionResponse, error) {
	sub := &domain.Submission{
		Kind:    domain.KindQuote,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Service: req.Service,
		Budget:  req.Budget,
		Message: req.Message,
	}

	if err := u.repo.CreateSubmission(ctx, sub); err != nil {
		logger.Error("failed to store quote request", "error", err)
		return SubmissionResponse{}, err
	}

	u.notify(sub, "quote-notification", "quote request notification")

	return ToSubmissionResponse(sub), nil
}

func (u *contactUsecase) SubmitSupportRequest(ctx context.Context, email string, req SupportRequest, priority bool) (SubmissionResponse, error) {
	tier := "standard"
	if priority {
		tier = "priority"
	}

	sub := &domain.Submission{
		Kind:    domain.KindSupport,
		Name:    req.Name,
		Email:   email,
		Phone:   req.Phone,
		Company: req.Company,
		Service: tier,
		Message: req.Message,
	}

	if err := u.repo.CreateSubmission(ctx, sub); err != nil {
		logger.Error("failed to store support request", "error", err)
		return SubmissionResponse{}, err
	}

	u.notify(sub, "support-notification", "support request notification")

	return ToSubmissionResponse(sub), nil
}

// notify sends the sales inbox an alert about a new submission. Delivery is
// best-effort; a mail failure never fails the submission itself.
func (u *contactUsecase) notify(sub *domain.Submission, templateID, operation string) {
	notifyEmail := os.Getenv("SALES_NOTIFY_EMAIL")
	if notifyEmail == "" {
		return
	}

	u.mailer.SendMailAsync(notifyEmail, templateID, map[string]any{
		"name":    sub.Name,
		"email":   sub.Email,
		"phone":   sub.Phone,
		"company": sub.Company,
		"service": sub.Service,
		"budget":  sub.Budget,
		"message": sub.Message,
	}, operation)
}

func (u *contactUsecase) ListSubmissions(ctx context.Context, kind string, page int) ([]SubmissionResponse, error) {
	if page < 1 {
		page = 1
	}
	offset := uint64(page-1) * submissionsPerPage

	submissions, err := u.repo.ListSubmissions(ctx, domain.SubmissionKind(kind), submissionsPerPage, offset)
	if err != nil {
		logger.Error("failed to list submissions", "error", err)
		return nil, err
	}

	responses := make([]SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		responses = append(responses, ToSubmissionResponse(&submissions[i]))
	}

	return responses, nil
}

func (u *contactUsecase) DeleteSubmission(ctx context.Context, id string) error {
	submissionID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrSubmissionNotFound
	}

	return u.repo.DeleteSubmission(ctx, submissionID)
}
