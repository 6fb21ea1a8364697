package usecase

import (
	"context"

	"github.com/aramistech/aramistech-website/internal/content/domain"
	"github.com/aramistech/aramistech-website/internal/content/repository"
	"github.com/aramistech/aramistech-website/pkg/logger"

	"github.com/google/uuid"
)

type contentUsecase struct {
	repo repository.ContentRepository
}

func NewContentUsecase(repo repository.ContentRepository) ContentUsecase {
	return &contentUsecase{repo: repo}
}

func (u *contentUsecase) GetPublicPage(ctx context.Context) (PageResponse, error) {
	sections, err := u.repo.ListSections(ctx, true)
	if err != nil {
		logger.Error("failed to load sections", "error", err)
		return PageResponse{}, err
	}

	testimonials, err := u.repo.ListTestimonials(ctx, true)
	if err != nil {
		logger.Error("failed to load testimonials", "error", err)
		return PageResponse{}, err
	}

	navItems, err := u.repo.ListNavItems(ctx, true)
	if err != nil {
		logger.Error("failed to load navigation", "error", err)
		return PageResponse{}, err
	}

	return PageResponse{
		Sections:     sections,
		Testimonials: testimonials,
		Navigation:   navItems,
	}, nil
}

func (u *contentUsecase) ListSections(ctx context.Context) ([]domain.Section, error) {
	return u.repo.ListSections(ctx, false)
}

func (u *contentUsecase) SaveSection(ctx context.Context, req SectionRequest) (domain.Section, error) {
	section := domain.Section{
		Slug:      req.Slug,
		Title:     req.Title,
		Body:      req.Body,
		ImageURL:  req.ImageURL,
		Position:  req.Position,
		Published: req.Published,
	}
	if req.ID != nil {
		id, err := uuid.Parse(*req.ID)
		if err != nil {
			return domain.Section{}, domain.ErrSectionNotFound
		}
		section.ID = id
	}

	if err := u.repo.UpsertSection(ctx, &section); err != nil {
		logger.Error("failed to save section", "slug", req.Slug, "error", err)
		return domain.Section{}, err
	}

	return section, nil
}

func (u *contentUsecase) DeleteSection(ctx context.Context, id string) error {
	sectionID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrSectionNotFound
	}
	return u.repo.DeleteSection(ctx, sectionID)
}

func (u *contentUsecase) ListTestimonials(ctx context.Context, publishedOnly bool) ([]domain.Testimonial, error) {
	return u.repo.ListTestimonials(ctx, publishedOnly)
}

func (u *contentUsecase) SaveTestimonial(ctx context.Context, req TestimonialRequest) (domain.Testimonial, error) {
	t := domain.Testimonial{
		Author:    req.Author,
		Company:   req.Company,
		Quote:     req.Quote,
		Rating:    req.Rating,
		Published: req.Published,
	}

	if req.ID != nil {
		id, err := uuid.Parse(*req.ID)
		if err != nil {
			return domain.Testimonial{}, domain.ErrTestimonialNotFound
		}
		t.ID = id
		if err := u.repo.UpdateTestimonial(ctx, &t); err != nil {
			return domain.Testimonial{}, err
		}
		return t, nil
	}

	if err := u.repo.CreateTestimonial(ctx, &t); err != nil {
		logger.Error("failed to create testimonial", "error", err)
		return domain.Testimonial{}, err
	}

	return t, nil
}

func (u *contentUsecase) DeleteTestimonial(ctx context.Context, id string) error {
	testimonialID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrTestimonialNotFound
	}
	return u.repo.DeleteTestimonial(ctx, testimonialID)
}

func (u *contentUsecase) ListNavItems(ctx context.Context) ([]domain.NavItem, error) {
	return u.repo.ListNavItems(ctx, false)
}

func (u *contentUsecase) SaveNavItem(ctx context.Context, req NavItemRequest) (domain.NavItem, error) {
	item := domain.NavItem{
		Label:    req.Label,
		URL:      req.URL,
		Position: req.Position,
		Visible:  req.Visible,
	}
	if req.ID != nil {
		id, err := uuid.Parse(*req.ID)
		if err != nil {
			return domain.NavItem{}, domain.ErrNavItemNotFound
		}
		item.ID = id
	}

	if err := u.repo.UpsertNavItem(ctx, &item); err != nil {
		logger.Error("failed to save navigation item", "error", err)
		return domain.NavItem{}, err
	}

	return item, nil
}

func (u *contentUsecase) DeleteNavItem(ctx context.Context, id string) error {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrNavItemNotFound
	}
	return u.repo.DeleteNavItem(ctx, itemID)
}
