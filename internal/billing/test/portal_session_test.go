package test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v84"
	"go.uber.org/mock/gomock"

	"github.com/aramistech/aramistech-website/internal/billing/domain"
	"github.com/aramistech/aramistech-website/internal/billing/usecase"
	"github.com/aramistech/aramistech-website/pkg/logger"
)

func TestBillingService_CreatePortalSession(t *testing.T) {
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

	t.Run("successful portal session creation", func(t *testing.T) {
		userID := uuid.New().String()
		customerID := "cus_test12345"
		portalURL := "https://billing.stripe.com/portal/session_test"

		subscription := &domain.Subscription{
			UserID:      uuid.MustParse(userID),
			Plan:        domain.PlanMaintenance,
			Status:      domain.StatusActive,
			CusID:       &customerID,
			DeviceCount: 12,
			Paid:        true,
		}

		portalSession := &stripe.BillingPortalSession{
			ID:  "bps_test123",
			URL: portalURL,
		}

		mockRepo.EXPECT().
			GetSubscriptionByUserID(ctx, userID).
			Return(subscription, nil)

		mockProvider.EXPECT().
			CreatePortalSession(customerID).
			Return(portalSession, nil)

		result, err := service.CreatePortalSession(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, portalURL, result.URL)
	})

	t.Run("subscription not found", func(t *testing.T) {
		userID := uuid.New().String()

		mockRepo.EXPECT().
			GetSubscriptionByUserID(ctx, userID).
			Return(nil, domain.ErrSubscriptionNotFound)

		result, err := service.CreatePortalSession(ctx, userID)

		assert.Error(t, err)
		assert.Equal(t, usecase.CreatePortalSessionOutput{}, result)
		assert.Contains(t, err.Error(), "failed to get subscription")
		assert.Contains(t, err.Error(), domain.ErrSubscriptionNotFound.Error())
	})

	t.Run("database error when retrieving subscription", func(t *testing.T) {
		userID := uuid.New().String()
		dbError := errors.New("database connection timeout")

		mockRepo.EXPECT().
			GetSubscriptionByUserID(ctx, userID).
			Return(nil, dbError)

		result, err := service.CreatePortalSession(ctx, userID)

		assert.Error(t, err)
		assert.Equal(t, usecase.CreatePortalSessionOutput{}, result)
		assert.Contains(t, err.Error(), "failed to get subscription")
		assert.Contains(t, err.Error(), dbError.Error())
	})

	t.Run("subscription exists but customer ID is nil", func(t *testing.T) {
		userID := uuid.New().String()

		subscription := &domain.Subscription{
			UserID:      uuid.MustParse(userID),
			Plan:        domain.PlanMaintenance,
			Status:      domain.StatusActive,
			CusID:       nil,
			DeviceCount: 5,
			Paid:        true,
		}

		mockRepo.EXPECT().
			GetSubscriptionByUserID(ctx, userID).
			Return(subscription, nil)

		result, err := service.CreatePortalSession(ctx, userID)

		assert.Error(t, err)
		assert.Equal(t, usecase.CreatePortalSessionOutput{}, result)
		assert.Equal(t, domain.ErrSubscriptionNotFound, err)
	})

	t.Run("provider failure is masked from the caller", func(t *testing.T) {
		userID := uuid.New().String()
		customerID := "cus_provider_down"

		subscription := &domain.Subscription{
			UserID:      uuid.MustParse(userID),
			Plan:        domain.PlanPremiumSupport,
			Status:      domain.StatusActive,
			CusID:       &customerID,
			DeviceCount: 30,
			Paid:        true,
		}

		mockRepo.EXPECT().
			GetSubscriptionByUserID(ctx, userID).
			Return(subscription, nil)

		mockProvider.EXPECT().
			CreatePortalSession(customerID).
			Return(nil, errors.New("stripe: api unavailable"))

		result, err := service.CreatePortalSession(ctx, userID)

		assert.Error(t, err)
		assert.Equal(t, usecase.CreatePortalSessionOutput{}, result)
		assert.NotContains(t, err.Error(), "stripe: api unavailable")
	})

	t.Run("canceled subscription still allows portal access", func(t *testing.T) {
		userID := uuid.New().String()
		customerID := "cus_test_canceled"
		portalURL := "https://billing.stripe.com/portal/canceled_session"

		subscription := &domain.Subscription{
			UserID:            uuid.MustParse(userID),
			Plan:              domain.PlanMaintenance,
			Status:            domain.StatusCanceled,
			CusID:             &customerID,
			DeviceCount:       12,
			Paid:              true,
			CancelAtPeriodEnd: true,
		}

		portalSession := &stripe.BillingPortalSession{
			ID:  "bps_canceled_test",
			URL: portalURL,
		}

		mockRepo.EXPECT().
			GetSubscriptionByUserID(ctx, userID).
			Return(subscription, nil)

		mockProvider.EXPECT().
			CreatePortalSession(customerID).
			Return(portalSession, nil)

		result, err := service.CreatePortalSession(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, portalURL, result.URL)
	})

	t.Run("past due subscription allows portal access", func(t *testing.T) {
		userID := uuid.New().String()
		customerID := "cus_test_past_due"
		portalURL := "https://billing.stripe.com/portal/past_due_session"

		subscription := &domain.Subscription{
			UserID:             uuid.MustParse(userID),
			Plan:               domain.PlanPremiumSupport,
			Status:             domain.StatusPastDue,
			CusID:              &customerID,
			DeviceCount:        8,
			Paid:               false,
			CurrentPeriodStart: time.Now().Add(-30 * 24 * time.Hour).Unix(),
			CurrentPeriodEnd:   time.Now().Add(-1 * 24 * time.Hour).Unix(),
		}

		portalSession := &stripe.BillingPortalSession{
			ID:  "bps_past_due_test",
			URL: portalURL,
		}

		mockRepo.EXPECT().
			GetSubscriptionByUserID(ctx, userID).
			Return(subscription, nil)

		mockProvider.EXPECT().
			CreatePortalSession(customerID).
			Return(portalSession, nil)

		result, err := service.CreatePortalSession(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, portalURL, result.URL)
	})
}
