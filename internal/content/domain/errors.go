package domain

import "errors"

var (
	ErrSectionNotFound     = errors.New("section not found")
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrNavItemNotFound     = errors.New("navigation item not found")
	ErrSlugTaken           = errors.New("section slug already in use")
)
