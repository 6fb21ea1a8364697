package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aramistech/aramistech-website/internal/contact/domain"
	"github.com/aramistech/aramistech-website/internal/contact/usecase"
	"github.com/aramistech/aramistech-website/internal/middleware"

	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	usecase usecase.ContactUsecase
}

func NewContactHandler(u usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{
		usecase: u,
	}
}

func (h *ContactHandler) Bind(e *echo.Group) {
	e.POST("/contact", h.SubmitContact)
	e.POST("/quote", h.SubmitQuote)
	e.POST("/support-request", h.SubmitSupportRequest, middleware.CookieSessionMiddleware(), middleware.HasSupportPlan())
	e.POST("/support-request/priority", h.SubmitPrioritySupportRequest, middleware.CookieSessionMiddleware(), middleware.HasPremiumSupport())
	e.GET("/admin/submissions", h.ListSubmissions, middleware.CookieSessionMiddleware())
	e.DELETE("/admin/submissions/:id", h.DeleteSubmission, middleware.CookieSessionMiddleware())
}

func (h *ContactHandler) SubmitContact(c echo.Context) error {
	var req usecase.ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	output, err := h.usecase.SubmitContact(ctx, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to submit message"})
	}

	return c.JSON(http.StatusCreated, output)
}

func (h *ContactHandler) SubmitQuote(c echo.Context) error {
	var req usecase.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	output, err := h.usecase.SubmitQuote(ctx, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to submit quote request"})
	}

	return c.JSON(http.StatusCreated, output)
}

func (h *ContactHandler) SubmitSupportRequest(c echo.Context) error {
	return h.submitSupport(c, false)
}

func (h *ContactHandler) SubmitPrioritySupportRequest(c echo.Context) error {
	return h.submitSupport(c, true)
}

func (h *ContactHandler) submitSupport(c echo.Context, priority bool) error {
	email, ok := c.Get("email").(string)
	if !ok || email == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}

	var req usecase.SupportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	output, err := h.usecase.SubmitSupportRequest(ctx, email, req, priority)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to submit support request"})
	}

	return c.JSON(http.StatusCreated, output)
}

func (h *ContactHandler) ListSubmissions(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	kind := c.QueryParam("kind")

	ctx := c.Request().Context()
	output, err := h.usecase.ListSubmissions(ctx, kind, page)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, output)
}

func (h *ContactHandler) DeleteSubmission(c echo.Context) error {
	ctx := c.Request().Context()
	err := h.usecase.DeleteSubmission(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Submission deleted"})
}
