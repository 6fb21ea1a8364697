package repository

import (
	"context"

	"github.com/aramistech/aramistech-website/internal/content/domain"

	"github.com/google/uuid"
)

type ContentRepository interface {
	ListSections(ctx context.Context, publishedOnly bool) ([]domain.Section, error)
	GetSectionBySlug(ctx context.Context, slug string) (*domain.Section, error)
	UpsertSection(ctx context.Context, section *domain.Section) error
	DeleteSection(ctx context.Context, id uuid.UUID) error

	ListTestimonials(ctx context.Context, publishedOnly bool) ([]domain.Testimonial, error)
	CreateTestimonial(ctx context.Context, t *domain.Testimonial) error
	UpdateTestimonial(ctx context.Context, t *domain.Testimonial) error
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error

	ListNavItems(ctx context.Context, visibleOnly bool) ([]domain.NavItem, error)
	UpsertNavItem(ctx context.Context, item *domain.NavItem) error
	DeleteNavItem(ctx context.Context, id uuid.UUID) error
}
