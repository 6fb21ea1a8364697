package server

import (
	"net/http"
	"os"

	authhandler "github.com/aramistech/aramistech-website/internal/auth/handler"
	authrepository "github.com/aramistech/aramistech-website/internal/auth/repository"
	authusecase "github.com/aramistech/aramistech-website/internal/auth/usecase"
	billingclient "github.com/aramistech/aramistech-website/internal/billing/client"
	billinghandler "github.com/aramistech/aramistech-website/internal/billing/handler"
	billingrepository "github.com/aramistech/aramistech-website/internal/billing/repository"
	billingusecase "github.com/aramistech/aramistech-website/internal/billing/usecase"
	contacthandler "github.com/aramistech/aramistech-website/internal/contact/handler"
	contactrepository "github.com/aramistech/aramistech-website/internal/contact/repository"
	contactusecase "github.com/aramistech/aramistech-website/internal/contact/usecase"
	contenthandler "github.com/aramistech/aramistech-website/internal/content/handler"
	contentrepository "github.com/aramistech/aramistech-website/internal/content/repository"
	contentusecase "github.com/aramistech/aramistech-website/internal/content/usecase"
	mediahandler "github.com/aramistech/aramistech-website/internal/media/handler"
	mediarepository "github.com/aramistech/aramistech-website/internal/media/repository"
	mediausecase "github.com/aramistech/aramistech-website/internal/media/usecase"
	sessionMiddleware "github.com/aramistech/aramistech-website/internal/middleware"
	usershandler "github.com/aramistech/aramistech-website/internal/users/handler"
	usersrepository "github.com/aramistech/aramistech-website/internal/users/repository"
	usersusecase "github.com/aramistech/aramistech-website/internal/users/usecase"
	"github.com/aramistech/aramistech-website/pkg/logger"
	passwordValidator "github.com/aramistech/aramistech-website/pkg/validator"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// requestLogger emits one structured log line per request through pkg/logger.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				logger.Error("request", "method", v.Method, "uri", v.URI, "status", v.Status, "error", v.Error)
				return nil
			}
			logger.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	})
}

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XFrameOptions:         "DENY",
		ContentTypeNosniff:    "nosniff",
		XSSProtection:         "1; mode=block",
		HSTSMaxAge:            31536000,
		HSTSExcludeSubdomains: false,
		ContentSecurityPolicy: "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:; font-src 'self' https:; connect-src 'self' https:;",
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStore(100),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
		},
	}))
	e.Use(middleware.BodyLimit("10MB"))

	v := validator.New()
	passwordValidator.RegisterPasswordValidation(v)
	e.Validator = &CustomValidator{validator: v}

	sessionMiddleware.InitSessionMiddleware(s.db.Pool())
	sessionMiddleware.InitSupportPlanMiddleware(s.db.Pool())

	e.GET("/health", s.healthHandler)

	apiGroup := e.Group("")

	s.setupAuthRoutes(apiGroup)
	s.setupUserRoutes(apiGroup)
	s.setupContactRoutes(apiGroup)
	s.setupContentRoutes(apiGroup)
	s.setupMediaRoutes(apiGroup)
	s.setupBillingRoutes(apiGroup)

	return e
}

func (s *Server) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, s.db.Health())
}

func (s *Server) setupAuthRoutes(apiGroup *echo.Group) {
	userStore := authrepository.NewUserStore(s.db)
	authUsecase := authusecase.NewUserService(userStore, s.mailer)
	authHandler := authhandler.NewAuthHandler(authUsecase)

	authGroup := apiGroup.Group("/auth")
	authHandler.Bind(authGroup)
}

func (s *Server) setupUserRoutes(apiGroup *echo.Group) {
	userStore := usersrepository.NewUserStore(s.db)
	userUsecase := usersusecase.NewUserUsecase(userStore, s.uploader)
	userHandler := usershandler.NewUserHandler(userUsecase)

	usersGroup := apiGroup.Group("/users")
	userHandler.Bind(usersGroup)
}

func (s *Server) setupContactRoutes(apiGroup *echo.Group) {
	submissionStore := contactrepository.NewSubmissionRepository(s.db)
	contactUsecase := contactusecase.NewContactUsecase(submissionStore, s.mailer)
	contactHandler := contacthandler.NewContactHandler(contactUsecase)

	contactHandler.Bind(apiGroup)
}

func (s *Server) setupContentRoutes(apiGroup *echo.Group) {
	contentStore := contentrepository.NewContentRepository(s.db)
	contentUsecase := contentusecase.NewContentUsecase(contentStore)
	contentHandler := contenthandler.NewContentHandler(contentUsecase)

	contentGroup := apiGroup.Group("/content")
	contentHandler.Bind(contentGroup)
}

func (s *Server) setupMediaRoutes(apiGroup *echo.Group) {
	mediaStore := mediarepository.NewMediaRepository(s.db)
	mediaUsecase := mediausecase.NewMediaUsecase(mediaStore, s.uploader, s.storage)
	mediaHandler := mediahandler.NewMediaHandler(mediaUsecase)

	mediaGroup := apiGroup.Group("/media")
	mediaHandler.Bind(mediaGroup)
}

func (s *Server) setupBillingRoutes(apiGroup *echo.Group) {
	provider, err := billingclient.NewStripeProvider(billingclient.StripeConfig{
		SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		AppUrl:        os.Getenv("APP_URL"),
	})
	if err != nil {
		logger.Error("failed to initialize billing provider", "error", err)
		return
	}

	subscriptionStore := billingrepository.NewSubscriptionRepository(s.db)
	billingUsecase := billingusecase.NewBillingUsecase(subscriptionStore, provider, billingusecase.Config{
		PriceMaintenanceID:    os.Getenv("STRIPE_PRICE_MAINTENANCE_ID"),
		PricePremiumSupportID: os.Getenv("STRIPE_PRICE_PREMIUM_SUPPORT_ID"),
	})
	billingHandler := billinghandler.NewBillingHandler(billingUsecase)

	billingGroup := apiGroup.Group("/billing")
	billingHandler.Bind(billingGroup)
}
