package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/aramistech/aramistech-website/internal/database"
	"github.com/aramistech/aramistech-website/pkg/logger"
	"github.com/aramistech/aramistech-website/pkg/mailer"
	"github.com/aramistech/aramistech-website/pkg/storage"
	"github.com/aramistech/aramistech-website/pkg/uploadfiles"
)

type Server struct {
	port int

	db       database.Service
	mailer   mailer.Mailer
	uploader *uploadfiles.Uploader
	storage  storage.Storage
}

const (
	FROM_EMAIL = "noreply@aramistech.com"
)

func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	resendAPIKey := os.Getenv("RESEND_API_KEY")

	uploader, err := uploadfiles.NewUploader(uploadfiles.Config{
		Endpoint:        os.Getenv("R2_ENDPOINT"),
		AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("R2_ACCESS_KEY_SECRET"),
		BucketName:      os.Getenv("R2_BUCKET_NAME"),
		Region:          "auto",
	})
	if err != nil {
		logger.Error("failed to initialize uploader", "error", err)
	}

	store, err := storage.NewFactory().Create(&storage.R2Config{
		AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		AccessKeySecret: os.Getenv("R2_ACCESS_KEY_SECRET"),
		BucketName:      os.Getenv("R2_BUCKET_NAME"),
		Endpoint:        os.Getenv("R2_ENDPOINT"),
	})
	if err != nil {
		logger.Error("failed to initialize storage", "error", err)
	}

	NewServer := &Server{
		port:     port,
		db:       database.New(),
		mailer:   mailer.NewResendMailer(resendAPIKey, FROM_EMAIL),
		uploader: uploader,
		storage:  store,
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", NewServer.port),
		Handler:      NewServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
