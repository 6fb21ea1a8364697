package domain

import "errors"

var (
	ErrMediaNotFound      = errors.New("media item not found")
	ErrUnsupportedType    = errors.New("unsupported file type")
	ErrInvalidMediaID     = errors.New("invalid media ID")
	ErrStorageUnavailable = errors.New("media storage unavailable")
)
