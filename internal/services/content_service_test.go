package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceCatalogSlugs(t *testing.T) {
	svc := NewContentService()

	offerings := svc.Services()
	assert.Len(t, offerings, 4)

	for _, offering := range offerings {
		assert.True(t, svc.IsValidServiceSlug(offering.Slug))
		assert.NotEmpty(t, offering.Name)
		assert.NotEmpty(t, offering.Description)
	}

	assert.False(t, svc.IsValidServiceSlug("ironing"))
	assert.False(t, svc.IsValidServiceSlug(""))
}

func TestTestimonialsRatings(t *testing.T) {
	svc := NewContentService()

	for _, tm := range svc.Testimonials() {
		assert.NotEmpty(t, tm.Author)
		assert.NotEmpty(t, tm.Quote)
		assert.GreaterOrEqual(t, tm.Rating, 1)
		assert.LessOrEqual(t, tm.Rating, 5)
	}
}
