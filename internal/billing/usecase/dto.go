package usecase

import (
	"fmt"
	"strconv"
	"time"

	"github.com/aramistech/aramistech-website/internal/billing/domain"

	"github.com/google/uuid"
)

type CreateCheckoutSessionInput struct {
	Plan        domain.SupportPlan `json:"plan" form:"plan" validate:"required,oneof=MAINTENANCE PREMIUM_SUPPORT"`
	DeviceCount int                `json:"device_count" form:"device_count" validate:"required,min=1,max=500"`
}

type CreateCheckoutSessionOutput struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

type CreatePortalSessionOutput struct {
	URL string `json:"url"`
}

type SubscriptionOutput struct {
	Plan             string `json:"plan"`
	Status           string `json:"status"`
	DeviceCount      int    `json:"device_count"`
	Paid             bool   `json:"paid"`
	CurrentPeriodEnd int64  `json:"current_period_end"`
}

type subscriptionMetadata struct {
	UserID      uuid.UUID
	Plan        domain.SupportPlan
	DeviceCount int
}

func newSubscriptionMetadata(meta map[string]string) (*subscriptionMetadata, error) {
	userID, ok := meta["user_id"]
	if !ok {
		return nil, fmt.Errorf("missing user_id in metadata")
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id format: %w", err)
	}

	plan, ok := meta["plan"]
	if !ok || !domain.IsValidPlan(domain.SupportPlan(plan)) {
		return nil, fmt.Errorf("missing or invalid plan in metadata")
	}

	deviceCount, err := strconv.Atoi(meta["device_count"])
	if err != nil || deviceCount <= 0 {
		deviceCount = 1
	}
	if deviceCount > 500 {
		deviceCount = 500
	}

	return &subscriptionMetadata{
		UserID:      userUUID,
		Plan:        domain.SupportPlan(plan),
		DeviceCount: deviceCount,
	}, nil
}

func (m *subscriptionMetadata) toSubscription(customerID string) *domain.Subscription {
	return &domain.Subscription{
		UserID:             m.UserID,
		Plan:               m.Plan,
		CusID:              &customerID,
		DeviceCount:        m.DeviceCount,
		Status:             domain.StatusPending,
		Paid:               false,
		CurrentPeriodStart: time.Now().Unix(),
		CurrentPeriodEnd:   time.Now().Unix(),
		CancelAtPeriodEnd:  false,
		CreatedAt:          time.Now().Unix(),
		UpdatedAt:          time.Now().Unix(),
	}
}
