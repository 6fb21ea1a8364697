package test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v84"
	"go.uber.org/mock/gomock"

	"github.com/aramistech/aramistech-website/internal/billing/domain"
	"github.com/aramistech/aramistech-website/internal/billing/usecase"
	"github.com/aramistech/aramistech-website/pkg/logger"
)

func TestBillingService_CreateCheckoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger.Init()

	mockRepo := NewMockSubscriptionRepository(ctrl)
	mockProvider := NewMockProvider(ctrl)

	config := usecase.Config{
		PriceMaintenanceID:    "price_maintenance_123",
		PricePremiumSupportID: "price_premium_456",
	}

	service := usecase.NewBillingUsecase(mockRepo, mockProvider, config)
	ctx := context.Background()

	email := "owner@client.com"

	t.Run("successful checkout for maintenance plan", func(t *testing.T) {
		userID := uuid.New().String()

		checkoutSession := &stripe.CheckoutSession{
			ID:  "cs_test_123",
			URL: "https://checkout.stripe.com/pay/cs_test_123",
		}

		mockRepo.EXPECT().
			GetSubscriptionByUserID(ctx, userID).
			Return(nil, domain.ErrSubscriptionNotFound)

		mockProvider.EXPECT().
			CreateCheckoutSession(email, "price_maintenance_123", userID, "MAINTENANCE", 12).
			Return(checkoutSession, nil)

		result, err := service.CreateCheckoutSession(ctx, userID, email, usecase.CreateCheckoutSessionInput{
			Plan:        domain.PlanMaintenance,
			DeviceCount: 12,
		})

		require.NoError(t, err)
		assert.Equal(t, "cs_test_123", result.SessionID)
		assert.Equal(t, checkoutSession.URL, result.URL)
	})

	t.Run("premium support plan resolves to its own price", func(t *testing.T) {
		userID := uuid.New().String()

		checkoutSession := &stripe.CheckoutSession{
			ID:  "cs_test_premium",
			URL: "https://checkout.stripe.com/pay/cs_test_premium",
		}

		mockRepo.EXPECT().
			GetSubscriptionByUserID(ctx, userID).
			Return(nil, domain.ErrSubscriptionNotFound)

		mockProvider.EXPECT().
			CreateCheckoutSession(email, "price_premium_456", userID, "PREMIUM_SUPPORT", 40).
			Return(checkoutSession, nil)

		result, err := service.CreateCheckoutSession(ctx, userID, email, usecase.CreateCheckoutSessionInput{
			Plan:        domain.PlanPremiumSupport,
			DeviceCount: 40,
		})

		require.NoError(t, err)
		assert.Equal(t, "cs_test_premium", result.SessionID)
	})

	t.Run("active subscriber cannot start a second checkout", func(t *testing.T) {
		userID := uuid.New().String()
		customerID := "cus_already"

		existing := &domain.Subscription{
			UserID:      uuid.MustParse(userID),
			Plan:        domain.PlanMaintenance,
			Status:      domain.StatusActive,
			CusID:       &customerID,
			DeviceCount: 6,
			Paid:        true,
		}

		mockRepo.EXPECT().
			GetSubscriptionByUserID(ctx, userID).
			Return(existing, nil)

		_, err := service.CreateCheckoutSession(ctx, userID, email, usecase.CreateCheckoutSessionInput{
			Plan:        domain.PlanPremiumSupport,
			DeviceCount: 6,
		})

		assert.ErrorIs(t, err, domain.ErrUserAlreadySubscribed)
	})

	t.Run("canceled subscriber may subscribe again", func(t *testing.T) {
		userID := uuid.New().String()
		customerID := "cus_returning"

		existing := &domain.Subscription{
			UserID:      uuid.MustParse(userID),
			Plan:        domain.PlanMaintenance,
			Status:      domain.StatusCanceled,
			CusID:       &customerID,
			DeviceCount: 6,
		}

		checkoutSession := &stripe.CheckoutSession{
			ID:  "cs_test_returning",
			URL: "https://checkout.stripe.com/pay/cs_test_returning",
		}

		mockRepo.EXPECT().
			GetSubscriptionByUserID(ctx, userID).
			Return(existing, nil)

		mockProvider.EXPECT().
			CreateCheckoutSession(email, "price_maintenance_123", userID, "MAINTENANCE", 6).
			Return(checkoutSession, nil)

		result, err := service.CreateCheckoutSession(ctx, userID, email, usecase.CreateCheckoutSessionInput{
			Plan:        domain.PlanMaintenance,
			DeviceCount: 6,
		})

		require.NoError(t, err)
		assert.Equal(t, "cs_test_returning", result.SessionID)
	})

	t.Run("invalid plan rejected before any lookup", func(t *testing.T) {
		userID := uuid.New().String()

		_, err := service.CreateCheckoutSession(ctx, userID, email, usecase.CreateCheckoutSessionInput{
			Plan:        domain.SupportPlan("GOLD"),
			DeviceCount: 3,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidPlan)
	})

	t.Run("NONE plan has no price and is rejected", func(t *testing.T) {
		userID := uuid.New().String()

		mockRepo.EXPECT().
			GetSubscriptionByUserID(ctx, userID).
			Return(nil, domain.ErrSubscriptionNotFound)

		_, err := service.CreateCheckoutSession(ctx, userID, email, usecase.CreateCheckoutSessionInput{
			Plan:        domain.PlanNone,
			DeviceCount: 1,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidPlan)
	})

	t.Run("provider failure is masked from the caller", func(t *testing.T) {
		userID := uuid.New().String()

		mockRepo.EXPECT().
			GetSubscriptionByUserID(ctx, userID).
			Return(nil, domain.ErrSubscriptionNotFound)

		mockProvider.EXPECT().
			CreateCheckoutSession(email, "price_maintenance_123", userID, "MAINTENANCE", 12).
			Return(nil, errors.New("stripe: rate limited"))

		_, err := service.CreateCheckoutSession(ctx, userID, email, usecase.CreateCheckoutSessionInput{
			Plan:        domain.PlanMaintenance,
			DeviceCount: 12,
		})

		assert.Error(t, err)
		assert.NotContains(t, err.Error(), "stripe: rate limited")
	})
}

func TestBillingService_GetSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger.Init()

	mockRepo := NewMockSubscriptionRepository(ctrl)
	mockProvider := NewMockProvider(ctrl)

	service := usecase.NewBillingUsecase(mockRepo, mockProvider, usecase.Config{})
	ctx := context.Background()

	t.Run("existing subscription is returned", func(t *testing.T) {
		userID := uuid.New().String()

		sub := &domain.Subscription{
			UserID:           uuid.MustParse(userID),
			Plan:             domain.PlanPremiumSupport,
			Status:           domain.StatusActive,
			DeviceCount:      25,
			Paid:             true,
			CurrentPeriodEnd: 1767225600,
		}

		mockRepo.EXPECT().
			GetSubscriptionByUserID(ctx, userID).
			Return(sub, nil)

		result, err := service.GetSubscription(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, "PREMIUM_SUPPORT", result.Plan)
		assert.Equal(t, "active", result.Status)
		assert.Equal(t, 25, result.DeviceCount)
		assert.True(t, result.Paid)
		assert.Equal(t, int64(1767225600), result.CurrentPeriodEnd)
	})

	t.Run("no subscription maps to the NONE plan", func(t *testing.T) {
		userID := uuid.New().String()

		mockRepo.EXPECT().
			GetSubscriptionByUserID(ctx, userID).
			Return(nil, domain.ErrSubscriptionNotFound)

		result, err := service.GetSubscription(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, "NONE", result.Plan)
		assert.Equal(t, "canceled", result.Status)
	})

	t.Run("database errors are surfaced", func(t *testing.T) {
		userID := uuid.New().String()
		dbError := errors.New("connection reset")

		mockRepo.EXPECT().
			GetSubscriptionByUserID(ctx, userID).
			Return(nil, dbError)

		_, err := service.GetSubscription(ctx, userID)
		assert.ErrorIs(t, err, dbError)
	})
}
