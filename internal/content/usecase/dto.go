package usecase

import "github.com/aramistech/aramistech-website/internal/content/domain"

// PageResponse bundles everything the frontend needs to render the marketing
// site in one round trip.
type PageResponse struct {
	Sections     []domain.Section     `json:"sections"`
	Testimonials []domain.Testimonial `json:"testimonials"`
	Navigation   []domain.NavItem     `json:"navigation"`
}

type SectionRequest struct {
	ID        *string `json:"id,omitempty" form:"id" validate:"omitempty,uuid"`
	Slug      string  `json:"slug" form:"slug" validate:"required,min=2,max=60"`
	Title     string  `json:"title" form:"title" validate:"required,max=200"`
	Body      string  `json:"body" form:"body" validate:"required"`
	ImageURL  string  `json:"image_url" form:"image_url" validate:"omitempty,url"`
	Position  int     `json:"position" form:"position" validate:"gte=0"`
	Published bool    `json:"published" form:"published"`
}

type TestimonialRequest struct {
	ID        *string `json:"id,omitempty" form:"id" validate:"omitempty,uuid"`
	Author    string  `json:"author" form:"author" validate:"required,min=2,max=100"`
	Company   string  `json:"company" form:"company" validate:"omitempty,max=100"`
	Quote     string  `json:"quote" form:"quote" validate:"required,min=10,max=2000"`
	Rating    int     `json:"rating" form:"rating" validate:"gte=1,lte=5"`
	Published bool    `json:"published" form:"published"`
}

type NavItemRequest struct {
	ID       *string `json:"id,omitempty" form:"id" validate:"omitempty,uuid"`
	Label    string  `json:"label" form:"label" validate:"required,min=1,max=60"`
	URL      string  `json:"url" form:"url" validate:"required,max=300"`
	Position int     `json:"position" form:"position" validate:"gte=0"`
	Visible  bool    `json:"visible" form:"visible"`
}
