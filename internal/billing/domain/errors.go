package domain

import "errors"

var (
	ErrInvalidPlan           = errors.New("invalid support plan")
	ErrUserAlreadySubscribed = errors.New("user already has an active support plan")
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrWebhook               = errors.New("webhook error")
)
