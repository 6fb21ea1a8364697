package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/aramistech/aramistech-website/internal/auth/domain"
	"github.com/aramistech/aramistech-website/internal/auth/usecase"
	"github.com/aramistech/aramistech-website/pkg/logger"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	usecase usecase.UserUsecase
}

func NewAuthHandler(u usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{
		usecase: u,
	}
}

func (h *AuthHandler) Bind(e *echo.Group) {
	e.POST("/login", h.LoginUserHandler)
	e.POST("/login/2fa", h.TwoFactorLoginHandler)
	e.POST("/logout", h.LogoutUserHandler)
}

func (h *AuthHandler) LoginUserHandler(c echo.Context) error {
	var req usecase.LoginUserInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	ctx := c.Request().Context()
	userAgent := c.Request().UserAgent()
	ipAddress := c.RealIP()
	output, err := h.usecase.LoginUser(ctx, req, userAgent, ipAddress)
	if err != nil {
		return h.rejectLogin(c, err)
	}

	if output.TwoFactorRequired {
		return c.JSON(http.StatusOK, output)
	}

	h.setSessionCookie(c, output.Session.Token)
	return c.JSON(http.StatusOK, output.User)
}

func (h *AuthHandler) TwoFactorLoginHandler(c echo.Context) error {
	var req usecase.TwoFactorLoginInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	ctx := c.Request().Context()
	userAgent := c.Request().UserAgent()
	ipAddress := c.RealIP()
	output, err := h.usecase.LoginWithTwoFactor(ctx, req, userAgent, ipAddress)
	if err != nil {
		return h.rejectLogin(c, err)
	}

	h.setSessionCookie(c, output.Session.Token)
	return c.JSON(http.StatusOK, output)
}

func (h *AuthHandler) LogoutUserHandler(c echo.Context) error {
	cookie, err := c.Cookie("session_token")
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
	}

	ctx := c.Request().Context()
	result, err := h.usecase.LogoutUser(ctx, cookie.Value)
	if err != nil {
		logger.Error("Error during logout:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	clearCookie := &http.Cookie{
		Name:     "session_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	}
	c.SetCookie(clearCookie)

	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) rejectLogin(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
	case errors.Is(err, domain.ErrInvalidTwoFactorCode), errors.Is(err, domain.ErrTwoFactorNotEnabled):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid authentication code"})
	case errors.Is(err, domain.ErrTooManyLoginAttempts):
		return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "Too many login attempts, please try again later"})
	default:
		logger.Error("Unexpected error during login:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	if token == "" {
		return
	}
	cookie := &http.Cookie{
		Name:     "session_token",
		Value:    token,
		Expires:  time.Now().Add(domain.SessionDurationMinutes * time.Minute),
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
	c.SetCookie(cookie)
}
