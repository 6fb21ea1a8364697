package repository

import (
	"context"

	"github.com/aramistech/aramistech-website/internal/media/domain"

	"github.com/google/uuid"
)

type MediaRepository interface {
	CreateItem(ctx context.Context, item *domain.Item) error
	GetItemByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	ListItems(ctx context.Context, folder string, limit, offset uint64) ([]domain.Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}
