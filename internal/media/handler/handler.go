package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aramistech/aramistech-website/internal/media/domain"
	"github.com/aramistech/aramistech-website/internal/media/usecase"
	"github.com/aramistech/aramistech-website/internal/middleware"

	"github.com/labstack/echo/v4"
)

type MediaHandler struct {
	usecase usecase.MediaUsecase
}

func NewMediaHandler(u usecase.MediaUsecase) *MediaHandler {
	return &MediaHandler{
		usecase: u,
	}
}

func (h *MediaHandler) Bind(e *echo.Group) {
	e.GET("", h.ListMedia)
	e.GET("/:id/download", h.DownloadMedia)
	e.POST("", h.UploadMedia, middleware.CookieSessionMiddleware())
	e.DELETE("/:id", h.DeleteMedia, middleware.CookieSessionMiddleware())
}

func (h *MediaHandler) UploadMedia(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "File is required"})
	}

	folder := c.FormValue("folder")

	ctx := c.Request().Context()
	item, err := h.usecase.UploadMedia(ctx, userID, folder, fileHeader)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedType) {
			return c.JSON(http.StatusUnsupportedMediaType, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Upload failed"})
	}

	return c.JSON(http.StatusCreated, item)
}

func (h *MediaHandler) ListMedia(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	folder := c.QueryParam("folder")

	ctx := c.Request().Context()
	items, err := h.usecase.ListMedia(ctx, folder, page)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list media"})
	}

	return c.JSON(http.StatusOK, items)
}

func (h *MediaHandler) DownloadMedia(c echo.Context) error {
	ctx := c.Request().Context()
	body, item, err := h.usecase.DownloadMedia(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrMediaNotFound) || errors.Is(err, domain.ErrInvalidMediaID) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Media not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Download failed"})
	}
	defer body.Close()

	c.Response().Header().Set("Content-Disposition", `attachment; filename="`+item.FileName+`"`)
	return c.Stream(http.StatusOK, item.ContentType, body)
}

func (h *MediaHandler) DeleteMedia(c echo.Context) error {
	ctx := c.Request().Context()
	err := h.usecase.DeleteMedia(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrMediaNotFound) || errors.Is(err, domain.ErrInvalidMediaID) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Media not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Delete failed"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Media deleted"})
}
