package domain

import "errors"

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrInvalidSubmission  = errors.New("invalid submission")
)
