package usecase

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/aramistech/aramistech-website/internal/media/domain"
)

type MediaUsecase interface {
	UploadMedia(ctx context.Context, userID string, folder string, fileHeader *multipart.FileHeader) (domain.Item, error)
	ListMedia(ctx context.Context, folder string, page int) ([]domain.Item, error)
	DownloadMedia(ctx context.Context, id string) (io.ReadCloser, *domain.Item, error)
	DeleteMedia(ctx context.Context, id string) error
}
