package client

import (
	"strconv"

	"github.com/stripe/stripe-go/v84"
	portalsession "github.com/stripe/stripe-go/v84/billingportal/session"
	"github.com/stripe/stripe-go/v84/checkout/session"
	"github.com/stripe/stripe-go/v84/webhook"
)

//go:generate mockgen -destination=../test/mock_provider.go -package=test github.com/aramistech/aramistech-website/internal/billing/client Provider
type Provider interface {
	CreateCheckoutSession(email, priceID, userID, plan string, deviceCount int) (*stripe.CheckoutSession, error)
	CreatePortalSession(customerID string) (*stripe.BillingPortalSession, error)
	ConstructEvent(body []byte, signature string) (stripe.Event, error)
}

type stripeProvider struct {
	webhookSecret string
	appUrl        string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	AppUrl        string
}

func NewStripeProvider(config StripeConfig) (Provider, error) {
	stripe.Key = config.SecretKey
	return &stripeProvider{
		webhookSecret: config.WebhookSecret,
		appUrl:        config.AppUrl,
	}, nil
}

func (s *stripeProvider) CreateCheckoutSession(email, priceID, userID, plan string, deviceCount int) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String("subscription"),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(int64(deviceCount)),
			},
		},
		SuccessURL:    stripe.String(s.appUrl + "/billing/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripe.String(s.appUrl + "/billing/cancel"),
		CustomerEmail: stripe.String(email),
		Metadata: map[string]string{
			"user_id":      userID,
			"plan":         plan,
			"device_count": strconv.Itoa(deviceCount),
		},
	}

	return session.New(params)
}

func (s *stripeProvider) CreatePortalSession(customerID string) (*stripe.BillingPortalSession, error) {
	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(s.appUrl + "/billing"),
	}

	return portalsession.New(params)
}

func (s *stripeProvider) ConstructEvent(body []byte, signature string) (stripe.Event, error) {
	return webhook.ConstructEventWithOptions(
		body,
		signature,
		s.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
}
