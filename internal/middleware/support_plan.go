package middleware

import (
	"context"
	"net/http"

	"github.com/aramistech/aramistech-website/internal/billing/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

var supportPlanDBPool *pgxpool.Pool

func InitSupportPlanMiddleware(pool *pgxpool.Pool) {
	supportPlanDBPool = pool
}

type planInfo struct {
	UserID string
	Plan   domain.SupportPlan
	Status domain.SubscriptionStatus
}

func getActivePlan(ctx context.Context, userID string) (*planInfo, error) {
	query := `
		SELECT s.plan, s.status
		FROM subscriptions s
		WHERE s.user_id = $1
		AND s.status IN ('active', 'trialing')
		LIMIT 1
	`

	var plan domain.SupportPlan
	var status domain.SubscriptionStatus
	err := supportPlanDBPool.QueryRow(ctx, query, userID).Scan(&plan, &status)
	if err != nil {
		return nil, err
	}

	return &planInfo{
		UserID: userID,
		Plan:   plan,
		Status: status,
	}, nil
}

func requirePlan(requiredPlans ...domain.SupportPlan) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get("user_id").(string)
			if !ok || userID == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "unauthorized",
				})
			}

			ctx := c.Request().Context()
			info, err := getActivePlan(ctx, userID)
			if err != nil {
				return c.JSON(http.StatusForbidden, echo.Map{
					"error": "active support plan required",
				})
			}

			hasRequiredPlan := false
			for _, requiredPlan := range requiredPlans {
				if info.Plan == requiredPlan {
					hasRequiredPlan = true
					break
				}
			}

			if !hasRequiredPlan {
				return c.JSON(http.StatusForbidden, echo.Map{
					"error":        "support plan upgrade required",
					"current_plan": info.Plan,
				})
			}

			return next(c)
		}
	}
}

func HasPremiumSupport() echo.MiddlewareFunc {
	return requirePlan(domain.PlanPremiumSupport)
}

func HasSupportPlan() echo.MiddlewareFunc {
	return requirePlan(domain.PlanMaintenance, domain.PlanPremiumSupport)
}
