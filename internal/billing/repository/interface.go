package repository

import (
	"context"

	"github.com/aramistech/aramistech-website/internal/billing/domain"
)

//go:generate mockgen -destination=../test/mock_subscription_repository.go -package=test github.com/aramistech/aramistech-website/internal/billing/repository SubscriptionRepository

type SubscriptionRepository interface {
	CreateSubscription(ctx context.Context, subscription *domain.Subscription) error
	GetSubscriptionByUserID(ctx context.Context, userID string) (*domain.Subscription, error)
	GetSubscriptionBySubID(ctx context.Context, subID string) (*domain.Subscription, error)
	GetSubscriptionByCustomerID(ctx context.Context, customerID string) (*domain.Subscription, error)
	UpdateSubscription(ctx context.Context, subscription *domain.Subscription) error
}
