package usecase

import (
	"context"

	"github.com/aramistech/aramistech-website/internal/content/domain"
)

type ContentUsecase interface {
	GetPublicPage(ctx context.Context) (PageResponse, error)
	ListSections(ctx context.Context) ([]domain.Section, error)
	SaveSection(ctx context.Context, req SectionRequest) (domain.Section, error)
	DeleteSection(ctx context.Context, id string) error
	ListTestimonials(ctx context.Context, publishedOnly bool) ([]domain.Testimonial, error)
	SaveTestimonial(ctx context.Context, req TestimonialRequest) (domain.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error
	ListNavItems(ctx context.Context) ([]domain.NavItem, error)
	SaveNavItem(ctx context.Context, req NavItemRequest) (domain.NavItem, error)
	DeleteNavItem(ctx context.Context, id string) error
}
