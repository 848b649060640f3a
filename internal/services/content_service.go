package services

import "github.com/hzkfs012/zapatoofficial/internal/models"

// Marketing-site content. The service slugs double as the allowed labels on
// booking requests, so the catalog lives here rather than in a handler.

var serviceCatalog = []models.ServiceOffering{
	{
		Slug:        "sneaker-laundry",
		Name:        "Sneaker Laundry",
		Description: "Complete cleaning service for all types of sneakers, including delicate materials.",
	},
	{
		Slug:        "deep-cleaning",
		Name:        "Deep Cleaning",
		Description: "Intensive cleaning for heavily soiled or stained sneakers, restoring them to near-new condition.",
	},
	{
		Slug:        "polishing",
		Name:        "Polishing & Shining",
		Description: "Restore the shine and luster of your leather sneakers with our professional polishing.",
	},
	{
		Slug:        "repellent",
		Name:        "Water/Stain Repellent",
		Description: "Protect your sneakers from water damage, stains, and dirt with our premium coating.",
	},
}

var testimonials = []models.Testimonial{
	{
		Author: "Alex Johnson",
		Quote:  "Absolutely amazed by the service! My Jordan 1s looked completely worn out, and now they look brand new. Highly recommend!",
		Rating: 5,
	},
	{
		Author: "Taylor Smith",
		Quote:  "The water-repellent coating has been a game changer for my white sneakers. No more worrying about stains!",
		Rating: 5,
	},
	{
		Author: "Jordan Lee",
		Quote:  "Fast service and professional cleaning. My Air Force 1s were yellowing, but they managed to restore them perfectly.",
		Rating: 4,
	},
	{
		Author: "Morgan Chen",
		Quote:  "The team at Zapato Laundaria went above and beyond. They even repaired a small tear in my sneakers that I hadn't noticed!",
		Rating: 5,
	},
}

// ContentService serves static marketing content.
type ContentService interface {
	Services() []models.ServiceOffering
	Testimonials() []models.Testimonial
	IsValidServiceSlug(slug string) bool
}

type contentService struct{}

// NewContentService creates a new instance of ContentService.
func NewContentService() ContentService {
	return &contentService{}
}

func (s *contentService) Services() []models.ServiceOffering {
	return serviceCatalog
}

func (s *contentService) Testimonials() []models.Testimonial {
	return testimonials
}

func (s *contentService) IsValidServiceSlug(slug string) bool {
	for _, offering := range serviceCatalog {
		if offering.Slug == slug {
			return true
		}
	}
	return false
}
