package models

import "time"

// GalleryItem is a before/after showcase row for the marketing site.
// Items with a lower DisplayOrder render first; items without one sort last,
// newest first.
type GalleryItem struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	BeforeImageURL string    `json:"before_image_url"`
	AfterImageURL  string    `json:"after_image_url"`
	DisplayOrder   *int      `json:"display_order"`
	CreatedAt      time.Time `json:"created_at"`
}
