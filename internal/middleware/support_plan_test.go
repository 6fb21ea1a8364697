package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportPlanGateRequiresSession(t *testing.T) {
	e := echo.New()

	gates := map[string]echo.MiddlewareFunc{
		"any plan":        HasSupportPlan(),
		"premium support": HasPremiumSupport(),
	}

	for name, gate := range gates {
		t.Run(name, func(t *testing.T) {
			called := false
			h := gate(func(c echo.Context) error {
				called = true
				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/support-request", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, h(c))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "unauthorized")
			assert.False(t, called, "handler must not run without a session user")
		})
	}
}
