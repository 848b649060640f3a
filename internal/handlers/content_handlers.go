package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hzkfs012/zapatoofficial/internal/services"
)

// ContentHandler serves the static site catalog.
type ContentHandler struct {
	contentService services.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(cs services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: cs}
}

// GetServices lists the bookable service offerings.
func (h *ContentHandler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.contentService.Services()})
}

// GetTestimonials lists customer testimonials.
func (h *ContentHandler) GetTestimonials(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.contentService.Testimonials()})
}
