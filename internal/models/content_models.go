package models

// ServiceOffering is a marketing-site service entry. Slug values double as
// the allowed labels on booking requests.
type ServiceOffering struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Testimonial is a customer quote shown on the marketing site.
type Testimonial struct {
	Author string `json:"author"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating"`
}
