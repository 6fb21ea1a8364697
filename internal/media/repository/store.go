package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aramistech/aramistech-website/internal/database"
	"github.com/aramistech/aramistech-website/internal/media/domain"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type mediaStore struct {
	db database.Service
}

func NewMediaRepository(db database.Service) MediaRepository {
	return &mediaStore{db: db}
}

func (s *mediaStore) CreateItem(ctx context.Context, item *domain.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.CreatedAt = time.Now()

	query := sq.Insert("media_items").
		Columns("id", "file_name", "url", "object_key", "content_type", "size_bytes", "folder", "uploaded_by", "created_at").
		Values(item.ID, item.FileName, item.URL, item.ObjectKey, item.ContentType, item.SizeBytes, item.Folder, item.UploadedBy, item.CreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.Pool().Exec(ctx, sqlStr, args...)
	return err
}

func (s *mediaStore) GetItemByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	query := sq.Select("id", "file_name", "url", "object_key", "content_type", "size_bytes", "folder", "uploaded_by", "created_at").
		From("media_items").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var item domain.Item
	err = s.db.Pool().QueryRow(ctx, sqlStr, args...).Scan(
		&item.ID,
		&item.FileName,
		&item.URL,
		&item.ObjectKey,
		&item.ContentType,
		&item.SizeBytes,
		&item.Folder,
		&item.UploadedBy,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMediaNotFound
		}
		return nil, err
	}

	return &item, nil
}

func (s *mediaStore) ListItems(ctx context.Context, folder string, limit, offset uint64) ([]domain.Item, error) {
	query := sq.Select("id", "file_name", "url", "object_key", "content_type", "size_bytes", "folder", "uploaded_by", "created_at").
		From("media_items").
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		PlaceholderFormat(sq.Dollar)

	if folder != "" {
		query = query.Where(sq.Eq{"folder": folder})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Pool().Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		err := rows.Scan(
			&item.ID,
			&item.FileName,
			&item.URL,
			&item.ObjectKey,
			&item.ContentType,
			&item.SizeBytes,
			&item.Folder,
			&item.UploadedBy,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (s *mediaStore) DeleteItem(ctx context.Context, id uuid.UUID) error {
	query := sq.Delete("media_items").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	commandTag, err := s.db.Pool().Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	if commandTag.RowsAffected() == 0 {
		return domain.ErrMediaNotFound
	}

	return nil
}
