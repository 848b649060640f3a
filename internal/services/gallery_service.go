package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hzkfs012/zapatoofficial/internal/models"
	"github.com/hzkfs012/zapatoofficial/internal/repositories"
	"github.com/hzkfs012/zapatoofficial/pkg/utils"
)

// --- Custom Service Errors for Gallery ---
var (
	ErrGalleryItemNotFound   = errors.New("gallery item not found")
	ErrGalleryItemValidation = errors.New("gallery item validation error")
)

// SaveGalleryItemRequest is the create/update payload for a gallery item.
type SaveGalleryItemRequest struct {
	Title          string `json:"title" binding:"required"`
	BeforeImageURL string `json:"before_image_url" binding:"required"`
	AfterImageURL  string `json:"after_image_url" binding:"required"`
	DisplayOrder   *int   `json:"display_order"`
}

// --- GalleryService Interface ---
type GalleryService interface {
	GetGalleryItems() ([]models.GalleryItem, error)
	CreateGalleryItem(req SaveGalleryItemRequest) (*models.GalleryItem, error)
	UpdateGalleryItem(id string, req SaveGalleryItemRequest) (*models.GalleryItem, error)
	DeleteGalleryItem(id string) error
}

type galleryService struct {
	galleryRepo repositories.GalleryRepository
	db          *sql.DB
}

// NewGalleryService creates a new instance of GalleryService.
func NewGalleryService(gr repositories.GalleryRepository, db *sql.DB) GalleryService {
	return &galleryService{galleryRepo: gr, db: db}
}

func validateGalleryItem(req SaveGalleryItemRequest) error {
	if utils.IsEmpty(req.Title) {
		return fmt.Errorf("%w: title is required", ErrGalleryItemValidation)
	}
	if !utils.IsValidURL(req.BeforeImageURL) {
		return fmt.Errorf("%w: before_image_url must be a valid URL", ErrGalleryItemValidation)
	}
	if !utils.IsValidURL(req.AfterImageURL) {
		return fmt.Errorf("%w: after_image_url must be a valid URL", ErrGalleryItemValidation)
	}
	return nil
}

func (s *galleryService) GetGalleryItems() ([]models.GalleryItem, error) {
	return s.galleryRepo.List()
}

func (s *galleryService) CreateGalleryItem(req SaveGalleryItemRequest) (*models.GalleryItem, error) {
	if err := validateGalleryItem(req); err != nil {
		return nil, err
	}
	item := &models.GalleryItem{
		Title:          req.Title,
		BeforeImageURL: req.BeforeImageURL,
		AfterImageURL:  req.AfterImageURL,
		DisplayOrder:   req.DisplayOrder,
	}
	return s.galleryRepo.Create(s.db, item)
}

func (s *galleryService) UpdateGalleryItem(id string, req SaveGalleryItemRequest) (*models.GalleryItem, error) {
	if err := validateGalleryItem(req); err != nil {
		return nil, err
	}

	item, err := s.galleryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGalleryItemNotFound
		}
		return nil, err
	}

	item.Title = req.Title
	item.BeforeImageURL = req.BeforeImageURL
	item.AfterImageURL = req.AfterImageURL
	item.DisplayOrder = req.DisplayOrder

	updated, err := s.galleryRepo.Update(s.db, item)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGalleryItemNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *galleryService) DeleteGalleryItem(id string) error {
	err := s.galleryRepo.Delete(s.db, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrGalleryItemNotFound
	}
	return err
}
