package test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aramistech/aramistech-website/internal/contact/domain"
	"github.com/aramistech/aramistech-website/internal/contact/handler"
	"github.com/aramistech/aramistech-website/internal/contact/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeMailer) SendMail(to string, id string, data map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeMailer) SendMailAsync(to string, id string, data map[string]any, operationName string) {
	_ = f.SendMail(to, id, data)
}

func (f *fakeMailer) sentTemplates() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	return e
}

func TestSubmitSupportRequest_Usecase(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("stores a standard support request under the session email", func(t *testing.T) {
		t.Setenv("SALES_NOTIFY_EMAIL", "sales@example.com")

		repo := NewMockSubmissionRepository(ctrl)
		mail := &fakeMailer{}
		svc := usecase.NewContactUsecase(repo, mail)

		var stored *domain.Submission
		repo.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, sub *domain.Submission) error {
				stored = sub
				return nil
			})

		out, err := svc.SubmitSupportRequest(context.Background(), "client@example.com", usecase.SupportRequest{
			Name:    "Jordan Reyes",
			Message: "Our office printer queue is stuck again.",
		}, false)

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, domain.KindSupport, stored.Kind)
		assert.Equal(t, "client@example.com", stored.Email)
		assert.Equal(t, "standard", stored.Service)
		assert.Equal(t, "support", out.Kind)
		assert.Contains(t, mail.sentTemplates(), "support-notification")
	})

	t.Run("marks priority requests with the priority tier", func(t *testing.T) {
		repo := NewMockSubmissionRepository(ctrl)
		svc := usecase.NewContactUsecase(repo, &fakeMailer{})

		var stored *domain.Submission
		repo.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, sub *domain.Submission) error {
				stored = sub
				return nil
			})

		_, err := svc.SubmitSupportRequest(context.Background(), "client@example.com", usecase.SupportRequest{
			Name:    "Jordan Reyes",
			Message: "Server is down, need someone on-site today.",
		}, true)

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "priority", stored.Service)
	})

	t.Run("surfaces repository failures", func(t *testing.T) {
		repo := NewMockSubmissionRepository(ctrl)
		svc := usecase.NewContactUsecase(repo, &fakeMailer{})

		repo.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).Return(assert.AnError)

		_, err := svc.SubmitSupportRequest(context.Background(), "client@example.com", usecase.SupportRequest{
			Name:    "Jordan Reyes",
			Message: "Our office printer queue is stuck again.",
		}, false)

		assert.Error(t, err)
	})
}

func TestSubmitSupportRequest_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := newEcho()

	body := `{"name":"Jordan Reyes","message":"Our office printer queue is stuck again."}`

	t.Run("accepts a request from a logged-in client", func(t *testing.T) {
		uc := NewMockContactUsecase(ctrl)
		h := handler.NewContactHandler(uc)

		uc.EXPECT().
			SubmitSupportRequest(gomock.Any(), "client@example.com", gomock.Any(), false).
			Return(usecase.SubmissionResponse{Kind: "support"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/support-request", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("email", "client@example.com")

		require.NoError(t, h.SubmitSupportRequest(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"kind":"support"`)
	})

	t.Run("priority route files the request as priority", func(t *testing.T) {
		uc := NewMockContactUsecase(ctrl)
		h := handler.NewContactHandler(uc)

		uc.EXPECT().
			SubmitSupportRequest(gomock.Any(), "client@example.com", gomock.Any(), true).
			Return(usecase.SubmissionResponse{Kind: "support"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/support-request/priority", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("email", "client@example.com")

		require.NoError(t, h.SubmitPrioritySupportRequest(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("rejects a request with no session email", func(t *testing.T) {
		uc := NewMockContactUsecase(ctrl)
		h := handler.NewContactHandler(uc)

		req := httptest.NewRequest(http.MethodPost, "/support-request", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.SubmitSupportRequest(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a message that is too short", func(t *testing.T) {
		uc := NewMockContactUsecase(ctrl)
		h := handler.NewContactHandler(uc)

		req := httptest.NewRequest(http.MethodPost, "/support-request", strings.NewReader(`{"name":"Jordan Reyes","message":"help"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("email", "client@example.com")

		err := h.SubmitSupportRequest(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}
