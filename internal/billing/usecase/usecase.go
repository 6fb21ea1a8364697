package usecase

import (
	"context"
	"net/http"
)

//go:generate mockgen -destination=../test/mock_billing_usecase.go -package=test github.com/aramistech/aramistech-website/internal/billing/usecase BillingUsecase
type BillingUsecase interface {
	CreateCheckoutSession(ctx context.Context, userID, email string, input CreateCheckoutSessionInput) (CreateCheckoutSessionOutput, error)
	CreatePortalSession(ctx context.Context, userID string) (CreatePortalSessionOutput, error)
	GetSubscription(ctx context.Context, userID string) (SubscriptionOutput, error)
	HandleWebhook(r *http.Request) error
}
