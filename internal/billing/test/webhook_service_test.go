package test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
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

func newEvent(t *testing.T, eventType string, payload string) stripe.Event {
	t.Helper()
	return stripe.Event{
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: json.RawMessage(payload)},
	}
}

func TestWebhookService_CheckoutSessionCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger.Init()

	config := usecase.Config{
		PriceMaintenanceID:    "price_maintenance_123",
		PricePremiumSupportID: "price_premium_456",
	}

	ctx := context.Background()

	t.Run("creates a pending subscription from checkout metadata", func(t *testing.T) {
		mockRepo := NewMockSubscriptionRepository(ctrl)
		ws := usecase.NewWebhookService(mockRepo, config)

		userID := uuid.New()
		payload := fmt.Sprintf(`{
			"customer": {"id": "cus_new"},
			"metadata": {"user_id": %q, "plan": "MAINTENANCE", "device_count": "12"}
		}`, userID.String())

		mockRepo.EXPECT().
			CreateSubscription(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, sub *domain.Subscription) error {
				assert.Equal(t, userID, sub.UserID)
				assert.Equal(t, domain.PlanMaintenance, sub.Plan)
				assert.Equal(t, 12, sub.DeviceCount)
				assert.Equal(t, domain.StatusPending, sub.Status)
				assert.False(t, sub.Paid)
				require.NotNil(t, sub.CusID)
				assert.Equal(t, "cus_new", *sub.CusID)
				return nil
			})

		err := ws.ProcessEvent(ctx, newEvent(t, "checkout.session.completed", payload))
		require.NoError(t, err)
	})

	t.Run("falls back to updating an existing subscription", func(t *testing.T) {
		mockRepo := NewMockSubscriptionRepository(ctrl)
		ws := usecase.NewWebhookService(mockRepo, config)

		userID := uuid.New()
		payload := fmt.Sprintf(`{
			"customer": {"id": "cus_rejoin"},
			"metadata": {"user_id": %q, "plan": "PREMIUM_SUPPORT", "device_count": "8"}
		}`, userID.String())

		existing := &domain.Subscription{
			UserID:      userID,
			Plan:        domain.PlanMaintenance,
			Status:      domain.StatusCanceled,
			DeviceCount: 8,
		}

		mockRepo.EXPECT().
			CreateSubscription(ctx, gomock.Any()).
			Return(errors.New("duplicate key value violates unique constraint"))
		mockRepo.EXPECT().
			GetSubscriptionByUserID(ctx, userID.String()).
			Return(existing, nil)
		mockRepo.EXPECT().
			UpdateSubscription(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, sub *domain.Subscription) error {
				assert.Equal(t, domain.StatusPending, sub.Status)
				require.NotNil(t, sub.CusID)
				assert.Equal(t, "cus_rejoin", *sub.CusID)
				return nil
			})

		err := ws.ProcessEvent(ctx, newEvent(t, "checkout.session.completed", payload))
		require.NoError(t, err)
	})

	t.Run("rejects metadata without a user id", func(t *testing.T) {
		mockRepo := NewMockSubscriptionRepository(ctrl)
		ws := usecase.NewWebhookService(mockRepo, config)

		payload := `{
			"customer": {"id": "cus_bad"},
			"metadata": {"plan": "MAINTENANCE", "device_count": "3"}
		}`

		err := ws.ProcessEvent(ctx, newEvent(t, "checkout.session.completed", payload))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing user_id")
	})

	t.Run("unhandled event types are ignored", func(t *testing.T) {
		mockRepo := NewMockSubscriptionRepository(ctrl)
		ws := usecase.NewWebhookService(mockRepo, config)

		err := ws.ProcessEvent(ctx, newEvent(t, "charge.refunded", `{}`))
		assert.NoError(t, err)
	})
}

func TestWebhookService_InvoiceEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger.Init()

	config := usecase.Config{
		PriceMaintenanceID:    "price_maintenance_123",
		PricePremiumSupportID: "price_premium_456",
	}

	ctx := context.Background()

	t.Run("payment succeeded activates the subscription", func(t *testing.T) {
		mockRepo := NewMockSubscriptionRepository(ctrl)
		ws := usecase.NewWebhookService(mockRepo, config)

		subID := "sub_active"
		sub := &domain.Subscription{
			UserID:      uuid.New(),
			Plan:        domain.PlanMaintenance,
			SubID:       &subID,
			Status:      domain.StatusPending,
			DeviceCount: 12,
		}

		payload := `{
			"customer": {"id": "cus_active"},
			"lines": {"data": [{
				"subscription": {"id": "sub_active"},
				"period": {"start": 1756425600, "end": 1759017600}
			}]}
		}`

		mockRepo.EXPECT().
			GetSubscriptionBySubID(ctx, subID).
			Return(sub, nil)
		mockRepo.EXPECT().
			UpdateSubscription(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *domain.Subscription) error {
				assert.Equal(t, domain.StatusActive, updated.Status)
				assert.True(t, updated.Paid)
				assert.Equal(t, int64(1756425600), updated.CurrentPeriodStart)
				assert.Equal(t, int64(1759017600), updated.CurrentPeriodEnd)
				return nil
			})

		err := ws.ProcessEvent(ctx, newEvent(t, "invoice.payment_succeeded", payload))
		require.NoError(t, err)
	})

	t.Run("payment failed marks the subscription past due", func(t *testing.T) {
		mockRepo := NewMockSubscriptionRepository(ctrl)
		ws := usecase.NewWebhookService(mockRepo, config)

		subID := "sub_late"
		sub := &domain.Subscription{
			UserID: uuid.New(),
			Plan:   domain.PlanPremiumSupport,
			SubID:  &subID,
			Status: domain.StatusActive,
			Paid:   true,
		}

		payload := `{
			"customer": {"id": "cus_late"},
			"lines": {"data": [{"subscription": {"id": "sub_late"}}]}
		}`

		mockRepo.EXPECT().
			GetSubscriptionBySubID(ctx, subID).
			Return(sub, nil)
		mockRepo.EXPECT().
			UpdateSubscription(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *domain.Subscription) error {
				assert.Equal(t, domain.StatusPastDue, updated.Status)
				return nil
			})

		err := ws.ProcessEvent(ctx, newEvent(t, "invoice.payment_failed", payload))
		require.NoError(t, err)
	})

	t.Run("payment succeeded with invalid invoice data fails", func(t *testing.T) {
		mockRepo := NewMockSubscriptionRepository(ctrl)
		ws := usecase.NewWebhookService(mockRepo, config)

		err := ws.ProcessEvent(ctx, newEvent(t, "invoice.payment_succeeded", `{"lines": {"data": []}}`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid invoice data")
	})
}

func TestWebhookService_SubscriptionLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	logger.Init()

	config := usecase.Config{
		PriceMaintenanceID:    "price_maintenance_123",
		PricePremiumSupportID: "price_premium_456",
	}

	ctx := context.Background()

	t.Run("subscription deleted cancels the local record", func(t *testing.T) {
		mockRepo := NewMockSubscriptionRepository(ctrl)
		ws := usecase.NewWebhookService(mockRepo, config)

		subID := "sub_gone"
		sub := &domain.Subscription{
			UserID: uuid.New(),
			Plan:   domain.PlanMaintenance,
			SubID:  &subID,
			Status: domain.StatusActive,
		}

		payload := `{"id": "sub_gone", "customer": {"id": "cus_gone"}}`

		mockRepo.EXPECT().
			GetSubscriptionBySubID(ctx, subID).
			Return(sub, nil)
		mockRepo.EXPECT().
			UpdateSubscription(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *domain.Subscription) error {
				assert.Equal(t, domain.StatusCanceled, updated.Status)
				assert.True(t, updated.CancelAtPeriodEnd)
				return nil
			})

		err := ws.ProcessEvent(ctx, newEvent(t, "customer.subscription.deleted", payload))
		require.NoError(t, err)
	})

	t.Run("subscription updated syncs plan and device count", func(t *testing.T) {
		mockRepo := NewMockSubscriptionRepository(ctrl)
		ws := usecase.NewWebhookService(mockRepo, config)

		subID := "sub_sync"
		sub := &domain.Subscription{
			UserID:      uuid.New(),
			Plan:        domain.PlanMaintenance,
			SubID:       &subID,
			Status:      domain.StatusActive,
			DeviceCount: 10,
		}

		payload := `{
			"id": "sub_sync",
			"customer": {"id": "cus_sync"},
			"status": "active",
			"items": {"data": [{
				"quantity": 25,
				"price": {"id": "price_premium_456"}
			}]}
		}`

		mockRepo.EXPECT().
			GetSubscriptionBySubID(ctx, subID).
			Return(sub, nil)
		mockRepo.EXPECT().
			UpdateSubscription(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *domain.Subscription) error {
				assert.Equal(t, domain.PlanPremiumSupport, updated.Plan)
				assert.Equal(t, 25, updated.DeviceCount)
				assert.Equal(t, domain.StatusActive, updated.Status)
				return nil
			})

		err := ws.ProcessEvent(ctx, newEvent(t, "customer.subscription.updated", payload))
		require.NoError(t, err)
	})

	t.Run("falls back to customer lookup when sub id is unknown", func(t *testing.T) {
		mockRepo := NewMockSubscriptionRepository(ctrl)
		ws := usecase.NewWebhookService(mockRepo, config)

		sub := &domain.Subscription{
			UserID: uuid.New(),
			Plan:   domain.PlanMaintenance,
			Status: domain.StatusPending,
		}

		payload := `{"id": "sub_fresh", "customer": {"id": "cus_known"}}`

		mockRepo.EXPECT().
			GetSubscriptionBySubID(ctx, "sub_fresh").
			Return(nil, domain.ErrSubscriptionNotFound)
		mockRepo.EXPECT().
			GetSubscriptionByCustomerID(ctx, "cus_known").
			Return(sub, nil)
		mockRepo.EXPECT().
			UpdateSubscription(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *domain.Subscription) error {
				require.NotNil(t, updated.SubID)
				assert.Equal(t, "sub_fresh", *updated.SubID)
				return nil
			})

		err := ws.ProcessEvent(ctx, newEvent(t, "customer.subscription.deleted", payload))
		require.NoError(t, err)
	})

	t.Run("unknown sub and customer is an error", func(t *testing.T) {
		mockRepo := NewMockSubscriptionRepository(ctrl)
		ws := usecase.NewWebhookService(mockRepo, config)

		payload := `{"id": "sub_ghost", "customer": {"id": "cus_ghost"}}`

		mockRepo.EXPECT().
			GetSubscriptionBySubID(ctx, "sub_ghost").
			Return(nil, domain.ErrSubscriptionNotFound)
		mockRepo.EXPECT().
			GetSubscriptionByCustomerID(ctx, "cus_ghost").
			Return(nil, domain.ErrSubscriptionNotFound)

		err := ws.ProcessEvent(ctx, newEvent(t, "customer.subscription.deleted", payload))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "subscription not found")
	})
}
