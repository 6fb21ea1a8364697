package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aramistech/aramistech-website/internal/content/domain"
	"github.com/aramistech/aramistech-website/internal/database"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type contentStore struct {
	db database.Service
}

func NewContentRepository(db database.Service) ContentRepository {
	return &contentStore{db: db}
}

func (s *contentStore) ListSections(ctx context.Context, publishedOnly bool) ([]domain.Section, error) {
	query := sq.Select("id", "slug", "title", "body", "image_url", "position", "published", "updated_at").
		From("content_sections").
		OrderBy("position ASC").
		PlaceholderFormat(sq.Dollar)

	if publishedOnly {
		query = query.Where(sq.Eq{"published": true})
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

	var sections []domain.Section
	for rows.Next() {
		var sec domain.Section
		err := rows.Scan(&sec.ID, &sec.Slug, &sec.Title, &sec.Body, &sec.ImageURL, &sec.Position, &sec.Published, &sec.UpdatedAt)
		if err != nil {
			return nil, err
		}
		sections = append(sections, sec)
	}

	return sections, rows.Err()
}

func (s *contentStore) GetSectionBySlug(ctx context.Context, slug string) (*domain.Section, error) {
	query := sq.Select("id", "slug", "title", "body", "image_url", "position", "published", "updated_at").
		From("content_sections").
		Where(sq.Eq{"slug": slug}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var sec domain.Section
	err = s.db.Pool().QueryRow(ctx, sqlStr, args...).Scan(
		&sec.ID, &sec.Slug, &sec.Title, &sec.Body, &sec.ImageURL, &sec.Position, &sec.Published, &sec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSectionNotFound
		}
		return nil, err
	}

	return &sec, nil
}

func (s *contentStore) UpsertSection(ctx context.Context, section *domain.Section) error {
	if section.ID == uuid.Nil {
		section.ID = uuid.New()
	}
	section.UpdatedAt = time.Now()

	query := sq.Insert("content_sections").
		Columns("id", "slug", "title", "body", "image_url", "position", "published", "updated_at").
		Values(section.ID, section.Slug, section.Title, section.Body, section.ImageURL, section.Position, section.Published, section.UpdatedAt).
		Suffix("ON CONFLICT (slug) DO UPDATE SET title = EXCLUDED.title, body = EXCLUDED.body, image_url = EXCLUDED.image_url, position = EXCLUDED.position, published = EXCLUDED.published, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.Pool().Exec(ctx, sqlStr, args...)
	return err
}

func (s *contentStore) DeleteSection(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "content_sections", id, domain.ErrSectionNotFound)
}

func (s *contentStore) ListTestimonials(ctx context.Context, publishedOnly bool) ([]domain.Testimonial, error) {
	query := sq.Select("id", "author", "company", "quote", "rating", "published", "created_at").
		From("testimonials").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if publishedOnly {
		query = query.Where(sq.Eq{"published": true})
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

	var testimonials []domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		err := rows.Scan(&t.ID, &t.Author, &t.Company, &t.Quote, &t.Rating, &t.Published, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}

	return testimonials, rows.Err()
}

func (s *contentStore) CreateTestimonial(ctx context.Context, t *domain.Testimonial) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = time.Now()

	query := sq.Insert("testimonials").
		Columns("id", "author", "company", "quote", "rating", "published", "created_at").
		Values(t.ID, t.Author, t.Company, t.Quote, t.Rating, t.Published, t.CreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.Pool().Exec(ctx, sqlStr, args...)
	return err
}

func (s *contentStore) UpdateTestimonial(ctx context.Context, t *domain.Testimonial) error {
	query := sq.Update("testimonials").
		Set("author", t.Author).
		Set("company", t.Company).
		Set("quote", t.Quote).
		Set("rating", t.Rating).
		Set("published", t.Published).
		Where(sq.Eq{"id": t.ID}).
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
		return domain.ErrTestimonialNotFound
	}

	return nil
}

func (s *contentStore) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "testimonials", id, domain.ErrTestimonialNotFound)
}

func (s *contentStore) ListNavItems(ctx context.Context, visibleOnly bool) ([]domain.NavItem, error) {
	query := sq.Select("id", "label", "url", "position", "visible").
		From("nav_items").
		OrderBy("position ASC").
		PlaceholderFormat(sq.Dollar)

	if visibleOnly {
		query = query.Where(sq.Eq{"visible": true})
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

	var items []domain.NavItem
	for rows.Next() {
		var item domain.NavItem
		err := rows.Scan(&item.ID, &item.Label, &item.URL, &item.Position, &item.Visible)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (s *contentStore) UpsertNavItem(ctx context.Context, item *domain.NavItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	query := sq.Insert("nav_items").
		Columns("id", "label", "url", "position", "visible").
		Values(item.ID, item.Label, item.URL, item.Position, item.Visible).
		Suffix("ON CONFLICT (id) DO UPDATE SET label = EXCLUDED.label, url = EXCLUDED.url, position = EXCLUDED.position, visible = EXCLUDED.visible").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.Pool().Exec(ctx, sqlStr, args...)
	return err
}

func (s *contentStore) DeleteNavItem(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "nav_items", id, domain.ErrNavItemNotFound)
}

func (s *contentStore) deleteByID(ctx context.Context, table string, id uuid.UUID, notFound error) error {
	query := sq.Delete(table).
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
		return notFound
	}

	return nil
}
