package domain

import (
	"time"

	"github.com/google/uuid"
)

type SubmissionKind string

const (
	KindContact SubmissionKind = "contact"
	KindQuote   SubmissionKind = "quote"
	KindSupport SubmissionKind = "support"
)

// Submission is a single contact-form or quote-request entry. Quote requests
// carry the extra Service and Budget fields; plain contact messages leave
// them empty.
type Submission struct {
	ID        uuid.UUID      `json:"id"`
	Kind      SubmissionKind `json:"kind"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone,omitempty"`
	Company   string         `json:"company,omitempty"`
	Service   string         `json:"service,omitempty"`
	Budget    string         `json:"budget,omitempty"`
	Message   string         `json:"message"`
	CreatedAt time.Time      `json:"created_at"`
}
