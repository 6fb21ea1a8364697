package usecase

import (
	"github.com/aramistech/aramistech-website/internal/contact/domain"
)

type ContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone" validate:"omitempty,max=30"`
	Company string `json:"company" form:"company" validate:"omitempty,max=100"`
	Message string `json:"message" form:"message" validate:"required,min=10,max=5000"`
}

type QuoteRequest struct {
	Name    string `json:"name" form:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone" validate:"omitempty,max=30"`
	Company string `json:"company" form:"company" validate:"omitempty,max=100"`
	Service string `json:"service" form:"service" validate:"required,max=100"`
	Budget  string `json:"budget" form:"budget" validate:"omitempty,max=50"`
	Message string `json:"message" form:"message" validate:"required,min=10,max=5000"`
}

// SupportRequest is filed by a logged-in client; the email comes from the
// session rather than the request body.
type SupportRequest struct {
	Name    string `json:"name" form:"name" validate:"required,min=2,max=100"`
	Phone   string `json:"phone" form:"phone" validate:"omitempty,max=30"`
	Company string `json:"company" form:"company" validate:"omitempty,max=100"`
	Message string `json:"message" form:"message" validate:"required,min=10,max=5000"`
}

type SubmissionResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
	Service   string `json:"service,omitempty"`
	Budget    string `json:"budget,omitempty"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

func ToSubmissionResponse(sub *domain.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:        sub.ID.String(),
		Kind:      string(sub.Kind),
		Name:      sub.Name,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Company:   sub.Company,
		Service:   sub.Service,
		Budget:    sub.Budget,
		Message:   sub.Message,
		CreatedAt: sub.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
