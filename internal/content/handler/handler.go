package handler

import (
	"errors"
	"net/http"

	"github.com/aramistech/aramistech-website/internal/content/domain"
	"github.com/aramistech/aramistech-website/internal/content/usecase"
	"github.com/aramistech/aramistech-website/internal/middleware"

	"github.com/labstack/echo/v4"
)

type ContentHandler struct {
	usecase usecase.ContentUsecase
}

func NewContentHandler(u usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{
		usecase: u,
	}
}

func (h *ContentHandler) Bind(e *echo.Group) {
	e.GET("/page", h.GetPublicPage)
	e.GET("/testimonials", h.ListPublishedTestimonials)

	admin := e.Group("/admin", middleware.CookieSessionMiddleware())
	admin.GET("/sections", h.ListSections)
	admin.PUT("/sections", h.SaveSection)
	admin.DELETE("/sections/:id", h.DeleteSection)
	admin.GET("/testimonials", h.ListAllTestimonials)
	admin.PUT("/testimonials", h.SaveTestimonial)
	admin.DELETE("/testimonials/:id", h.DeleteTestimonial)
	admin.GET("/nav", h.ListNavItems)
	admin.PUT("/nav", h.SaveNavItem)
	admin.DELETE("/nav/:id", h.DeleteNavItem)
}

func (h *ContentHandler) GetPublicPage(c echo.Context) error {
	output, err := h.usecase.GetPublicPage(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load page content"})
	}
	return c.JSON(http.StatusOK, output)
}

func (h *ContentHandler) ListPublishedTestimonials(c echo.Context) error {
	output, err := h.usecase.ListTestimonials(c.Request().Context(), true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load testimonials"})
	}
	return c.JSON(http.StatusOK, output)
}

func (h *ContentHandler) ListSections(c echo.Context) error {
	output, err := h.usecase.ListSections(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, output)
}

func (h *ContentHandler) SaveSection(c echo.Context) error {
	var req usecase.SectionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.usecase.SaveSection(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, output)
}

func (h *ContentHandler) DeleteSection(c echo.Context) error {
	err := h.usecase.DeleteSection(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSectionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Section deleted"})
}

func (h *ContentHandler) ListAllTestimonials(c echo.Context) error {
	output, err := h.usecase.ListTestimonials(c.Request().Context(), false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, output)
}

func (h *ContentHandler) SaveTestimonial(c echo.Context) error {
	var req usecase.TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.usecase.SaveTestimonial(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrTestimonialNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, output)
}

func (h *ContentHandler) DeleteTestimonial(c echo.Context) error {
	err := h.usecase.DeleteTestimonial(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTestimonialNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Testimonial deleted"})
}

func (h *ContentHandler) ListNavItems(c echo.Context) error {
	output, err := h.usecase.ListNavItems(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, output)
}

func (h *ContentHandler) SaveNavItem(c echo.Context) error {
	var req usecase.NavItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.usecase.SaveNavItem(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, output)
}

func (h *ContentHandler) DeleteNavItem(c echo.Context) error {
	err := h.usecase.DeleteNavItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNavItemNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Navigation item deleted"})
}
