package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aramistech/aramistech-website/internal/billing/client"
	"github.com/aramistech/aramistech-website/internal/billing/domain"
	"github.com/aramistech/aramistech-website/internal/billing/repository"
	"github.com/aramistech/aramistech-website/pkg/logger"
)

type billingService struct {
	subscriptionRepo repository.SubscriptionRepository
	provider         client.Provider
	webhookService   *WebhookService
	config           Config
}

type Config struct {
	PriceMaintenanceID    string
	PricePremiumSupportID string
}

func NewBillingUsecase(
	subscriptionRepo repository.SubscriptionRepository,
	provider client.Provider,
	config Config,
) BillingUsecase {
	webhookService := NewWebhookService(subscriptionRepo, config)
	return &billingService{
		subscriptionRepo: subscriptionRepo,
		provider:         provider,
		webhookService:   webhookService,
		config:           config,
	}
}

func (b *billingService) CreateCheckoutSession(ctx context.Context, userID, email string, input CreateCheckoutSessionInput) (CreateCheckoutSessionOutput, error) {
	if !domain.IsValidPlan(input.Plan) {
		return CreateCheckoutSessionOutput{}, domain.ErrInvalidPlan
	}

	existingSub, err := b.subscriptionRepo.GetSubscriptionByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrSubscriptionNotFound) {
		return CreateCheckoutSessionOutput{}, fmt.Errorf("failed to check existing subscription: %w", err)
	}

	if existingSub != nil && existingSub.IsActive() && existingSub.Plan != domain.PlanNone {
		return CreateCheckoutSessionOutput{}, domain.ErrUserAlreadySubscribed
	}

	priceID, err := b.priceIDFromPlan(input.Plan)
	if err != nil {
		return CreateCheckoutSessionOutput{}, err
	}

	sess, err := b.provider.CreateCheckoutSession(email, priceID, userID, string(input.Plan), input.DeviceCount)
	if err != nil {
		logger.Error("failed to create Stripe checkout session", "user_id", userID, "plan", input.Plan, "error", err)
		return CreateCheckoutSessionOutput{}, fmt.Errorf("failed to create checkout session")
	}

	return CreateCheckoutSessionOutput{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

func (b *billingService) CreatePortalSession(ctx context.Context, userID string) (CreatePortalSessionOutput, error) {
	sub, err := b.subscriptionRepo.GetSubscriptionByUserID(ctx, userID)
	if err != nil {
		return CreatePortalSessionOutput{}, fmt.Errorf("failed to get subscription: %w", err)
	}

	if sub == nil || sub.CusID == nil || *sub.CusID == "" {
		return CreatePortalSessionOutput{}, domain.ErrSubscriptionNotFound
	}

	portalSession, err := b.provider.CreatePortalSession(*sub.CusID)
	if err != nil {
		logger.Error("failed to create portal session", "user_id", userID, "customer_id", *sub.CusID, "error", err)
		return CreatePortalSessionOutput{}, fmt.Errorf("failed to create portal session")
	}

	return CreatePortalSessionOutput{
		URL: portalSession.URL,
	}, nil
}

func (b *billingService) GetSubscription(ctx context.Context, userID string) (SubscriptionOutput, error) {
	sub, err := b.subscriptionRepo.GetSubscriptionByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrSubscriptionNotFound) {
			return SubscriptionOutput{Plan: string(domain.PlanNone), Status: string(domain.StatusCanceled)}, nil
		}
		return SubscriptionOutput{}, err
	}

	return SubscriptionOutput{
		Plan:             string(sub.Plan),
		Status:           string(sub.Status),
		DeviceCount:      sub.DeviceCount,
		Paid:             sub.Paid,
		CurrentPeriodEnd: sub.CurrentPeriodEnd,
	}, nil
}

func (b *billingService) HandleWebhook(r *http.Request) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("%w: invalid request body", domain.ErrWebhook)
	}

	event, err := b.provider.ConstructEvent(body, r.Header.Get("Stripe-Signature"))
	if err != nil {
		logger.Error("invalid webhook signature", "error", err)
		return fmt.Errorf("%w: invalid signature", domain.ErrWebhook)
	}

	if err := b.webhookService.ProcessEvent(r.Context(), event); err != nil {
		logger.Error("failed to process webhook event", "type", event.Type, "error", err)
		return fmt.Errorf("%w: failed to process event", domain.ErrWebhook)
	}

	return nil
}

func (b *billingService) priceIDFromPlan(plan domain.SupportPlan) (string, error) {
	var priceID string
	switch plan {
	case domain.PlanMaintenance:
		priceID = b.config.PriceMaintenanceID
	case domain.PlanPremiumSupport:
		priceID = b.config.PricePremiumSupportID
	default:
		return "", domain.ErrInvalidPlan
	}
	if priceID == "" {
		logger.Error("missing price ID for plan", "plan", plan)
		return "", domain.ErrInvalidPlan
	}
	return priceID, nil
}
