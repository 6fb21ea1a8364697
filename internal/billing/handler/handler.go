package handler

import (
	"errors"
	"net/http"

	"github.com/aramistech/aramistech-website/internal/billing/domain"
	"github.com/aramistech/aramistech-website/internal/billing/usecase"
	"github.com/aramistech/aramistech-website/internal/middleware"

	"github.com/labstack/echo/v4"
)

type BillingHandler struct {
	usecase usecase.BillingUsecase
}

func NewBillingHandler(u usecase.BillingUsecase) *BillingHandler {
	return &BillingHandler{
		usecase: u,
	}
}

func (h *BillingHandler) Bind(e *echo.Group) {
	e.POST("/checkout-session", h.CreateCheckoutSession, middleware.CookieSessionMiddleware())
	e.POST("/portal-session", h.CreatePortalSession, middleware.CookieSessionMiddleware())
	e.GET("/subscription", h.GetSubscription, middleware.CookieSessionMiddleware())
	e.POST("/webhook", h.HandleWebhook)
}

func (h *BillingHandler) CreateCheckoutSession(c echo.Context) error {
	var req usecase.CreateCheckoutSessionInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	userEmail, ok := c.Get("email").(string)
	if !ok || userEmail == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	ctx := c.Request().Context()
	output, err := h.usecase.CreateCheckoutSession(ctx, userID, userEmail, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPlan):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid support plan"})
		case errors.Is(err, domain.ErrUserAlreadySubscribed):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "An active support plan already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		}
	}

	return c.JSON(http.StatusOK, output)
}

func (h *BillingHandler) CreatePortalSession(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	ctx := c.Request().Context()
	output, err := h.usecase.CreatePortalSession(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrSubscriptionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "No support plan on file"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, output)
}

func (h *BillingHandler) GetSubscription(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	ctx := c.Request().Context()
	output, err := h.usecase.GetSubscription(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, output)
}

func (h *BillingHandler) HandleWebhook(c echo.Context) error {
	if err := h.usecase.HandleWebhook(c.Request()); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Webhook processing failed"})
	}
	return c.NoContent(http.StatusOK)
}
