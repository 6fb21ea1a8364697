package usecase

import (
	"context"
	"io"
	"mime/multipart"
	"strings"

	"github.com/aramistech/aramistech-website/internal/media/domain"
	"github.com/aramistech/aramistech-website/internal/media/repository"
	"github.com/aramistech/aramistech-website/pkg/logger"
	"github.com/aramistech/aramistech-website/pkg/storage"
	"github.com/aramistech/aramistech-website/pkg/uploadfiles"

	"github.com/google/uuid"
)

const mediaPerPage = 50

// Gallery accepts images plus PDFs for downloadable brochures.
var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

type mediaUsecase struct {
	repo     repository.MediaRepository
	uploader *uploadfiles.Uploader
	storage  storage.Storage
}

func NewMediaUsecase(repo repository.MediaRepository, uploader *uploadfiles.Uploader, store storage.Storage) MediaUsecase {
	return &mediaUsecase{
		repo:     repo,
		uploader: uploader,
		storage:  store,
	}
}

func (u *mediaUsecase) UploadMedia(ctx context.Context, userID string, folder string, fileHeader *multipart.FileHeader) (domain.Item, error) {
	uploaderUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Item{}, domain.ErrMediaNotFound
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedContentTypes[contentType] {
		return domain.Item{}, domain.ErrUnsupportedType
	}

	if folder == "" {
		folder = "gallery"
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.Item{}, err
	}
	defer file.Close()

	fileURL, err := u.uploader.Upload(ctx, file, fileHeader, folder)
	if err != nil {
		logger.Error("media upload failed", "file", fileHeader.Filename, "error", err)
		return domain.Item{}, domain.ErrStorageUnavailable
	}

	item := domain.Item{
		FileName:    fileHeader.Filename,
		URL:         fileURL,
		ObjectKey:   objectKeyFromURL(fileURL),
		ContentType: contentType,
		SizeBytes:   fileHeader.Size,
		Folder:      folder,
		UploadedBy:  uploaderUUID,
	}

	if err := u.repo.CreateItem(ctx, &item); err != nil {
		logger.Error("failed to record media item", "error", err)
		// Best effort: don't leave an orphaned object behind.
		if delErr := u.uploader.Delete(ctx, fileURL); delErr != nil {
			logger.Error("failed to clean up uploaded object", "url", fileURL, "error", delErr)
		}
		return domain.Item{}, err
	}

	return item, nil
}

func (u *mediaUsecase) ListMedia(ctx context.Context, folder string, page int) ([]domain.Item, error) {
	if page < 1 {
		page = 1
	}
	offset := uint64(page-1) * mediaPerPage

	return u.repo.ListItems(ctx, folder, mediaPerPage, offset)
}

func (u *mediaUsecase) DownloadMedia(ctx context.Context, id string) (io.ReadCloser, *domain.Item, error) {
	mediaID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil, domain.ErrInvalidMediaID
	}

	item, err := u.repo.GetItemByID(ctx, mediaID)
	if err != nil {
		return nil, nil, err
	}

	body, err := u.storage.Download(ctx, item.ObjectKey)
	if err != nil {
		logger.Error("media download failed", "key", item.ObjectKey, "error", err)
		return nil, nil, domain.ErrStorageUnavailable
	}

	return body, item, nil
}

func (u *mediaUsecase) DeleteMedia(ctx context.Context, id string) error {
	mediaID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrInvalidMediaID
	}

	item, err := u.repo.GetItemByID(ctx, mediaID)
	if err != nil {
		return err
	}

	if err := u.repo.DeleteItem(ctx, mediaID); err != nil {
		return err
	}

	if err := u.storage.Delete(ctx, item.ObjectKey); err != nil {
		// The DB record is gone; losing the object cleanup is tolerable.
		logger.Error("failed to delete stored object", "key", item.ObjectKey, "error", err)
	}

	return nil
}

// objectKeyFromURL recovers the bucket key (folder/filename) from the public
// URL the uploader returned.
func objectKeyFromURL(fileURL string) string {
	parts := strings.Split(fileURL, "/")
	if len(parts) < 2 {
		return fileURL
	}
	return strings.Join(parts[len(parts)-2:], "/")
}
