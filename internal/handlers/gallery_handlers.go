package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hzkfs012/zapatoofficial/internal/models"
	"github.com/hzkfs012/zapatoofficial/internal/services"
	"github.com/hzkfs012/zapatoofficial/pkg/utils"
)

// GalleryHandler holds the gallery service.
type GalleryHandler struct {
	galleryService services.GalleryService
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(gs services.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: gs}
}

// GetGalleryItems handles the public gallery listing.
func (h *GalleryHandler) GetGalleryItems(c *gin.Context) {
	items, err := h.galleryService.GetGalleryItems()
	if err != nil {
		utils.LogError(err, "GetGalleryItems: Error from galleryService.GetGalleryItems")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch gallery items.", "Internal error"))
		return
	}

	if items == nil {
		items = []models.GalleryItem{}
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// CreateGalleryItem handles adding a new before/after pair.
func (h *GalleryHandler) CreateGalleryItem(c *gin.Context) {
	var req services.SaveGalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateGalleryItem: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.galleryService.CreateGalleryItem(req)
	if err != nil {
		utils.LogError(err, "CreateGalleryItem: Error from galleryService.CreateGalleryItem")
		if errors.Is(err, services.ErrGalleryItemValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create gallery item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateGalleryItem handles editing an existing pair.
func (h *GalleryHandler) UpdateGalleryItem(c *gin.Context) {
	id := c.Param("id")

	var req services.SaveGalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateGalleryItem: Failed to bind JSON for ID "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.galleryService.UpdateGalleryItem(id, req)
	if err != nil {
		utils.LogError(err, "UpdateGalleryItem: Error from galleryService.UpdateGalleryItem for ID "+id)
		if errors.Is(err, services.ErrGalleryItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Gallery item not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrGalleryItemValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update gallery item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteGalleryItem handles removing a pair.
func (h *GalleryHandler) DeleteGalleryItem(c *gin.Context) {
	id := c.Param("id")

	if err := h.galleryService.DeleteGalleryItem(id); err != nil {
		utils.LogError(err, "DeleteGalleryItem: Error from galleryService.DeleteGalleryItem for ID "+id)
		if errors.Is(err, services.ErrGalleryItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Gallery item not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete gallery item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gallery item deleted successfully"})
}
