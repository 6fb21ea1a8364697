package domain

import (
	"time"

	"github.com/google/uuid"
)

// Section is one content-managed block of the marketing site (hero, services,
// about, etc). Slug identifies the block to the frontend; Position orders
// blocks within the page.
type Section struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ImageURL  string    `json:"image_url,omitempty"`
	Position  int       `json:"position"`
	Published bool      `json:"published"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Testimonial struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Company   string    `json:"company,omitempty"`
	Quote     string    `json:"quote"`
	Rating    int       `json:"rating"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
}

type NavItem struct {
	ID       uuid.UUID `json:"id"`
	Label    string    `json:"label"`
	URL      string    `json:"url"`
	Position int       `json:"position"`
	Visible  bool      `json:"visible"`
}
