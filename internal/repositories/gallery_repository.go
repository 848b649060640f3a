package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hzkfs012/zapatoofficial/internal/models"
)

// GalleryRepository defines the interface for gallery-item database operations.
type GalleryRepository interface {
	Create(executor SQLExecutor, item *models.GalleryItem) (*models.GalleryItem, error)
	GetByID(id string) (*models.GalleryItem, error)
	List() ([]models.GalleryItem, error)
	Update(executor SQLExecutor, item *models.GalleryItem) (*models.GalleryItem, error)
	Delete(executor SQLExecutor, id string) error
}

type galleryRepository struct {
	db *sql.DB
}

// NewGalleryRepository creates a new instance of GalleryRepository.
func NewGalleryRepository(db *sql.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

const selectGalleryFields = `
	id, title, before_image_url, after_image_url, display_order, created_at
`

func scanGalleryRow(row scanner) (*models.GalleryItem, error) {
	var item models.GalleryItem
	var displayOrder sql.NullInt32

	err := row.Scan(&item.ID, &item.Title, &item.BeforeImageURL,
		&item.AfterImageURL, &displayOrder, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning gallery item: %v", ErrDatabaseError, err)
	}

	if displayOrder.Valid {
		order := int(displayOrder.Int32)
		item.DisplayOrder = &order
	}
	return &item, nil
}

func (r *galleryRepository) Create(executor SQLExecutor, item *models.GalleryItem) (*models.GalleryItem, error) {
	query := `INSERT INTO gallery_items (title, before_image_url, after_image_url, display_order)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`

	err := executor.QueryRow(query,
		item.Title, item.BeforeImageURL, item.AfterImageURL, item.DisplayOrder,
	).Scan(&item.ID, &item.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: creating gallery item: %v", ErrDatabaseError, err)
	}
	return item, nil
}

func (r *galleryRepository) GetByID(id string) (*models.GalleryItem, error) {
	query := "SELECT " + selectGalleryFields + " FROM gallery_items WHERE id = $1"
	return scanGalleryRow(r.db.QueryRow(query, id))
}

// galleryListQuery orders by display priority: explicit display_order
// ascending with nulls last, newest first within ties.
const galleryListQuery = "SELECT " + selectGalleryFields + ` FROM gallery_items
	ORDER BY display_order ASC NULLS LAST, created_at DESC`

func (r *galleryRepository) List() ([]models.GalleryItem, error) {
	items := []models.GalleryItem{}

	rows, err := r.db.Query(galleryListQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: querying gallery items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		item, scanErr := scanGalleryRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, *item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating gallery rows: %v", ErrDatabaseError, err)
	}
	return items, nil
}

func (r *galleryRepository) Update(executor SQLExecutor, item *models.GalleryItem) (*models.GalleryItem, error) {
	query := `UPDATE gallery_items SET
	            title = $1, before_image_url = $2, after_image_url = $3, display_order = $4
	          WHERE id = $5
	          RETURNING created_at`

	err := executor.QueryRow(query,
		item.Title, item.BeforeImageURL, item.AfterImageURL, item.DisplayOrder, item.ID,
	).Scan(&item.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating gallery item %s: %v", ErrDatabaseError, item.ID, err)
	}
	return item, nil
}

func (r *galleryRepository) Delete(executor SQLExecutor, id string) error {
	result, err := executor.Exec(`DELETE FROM gallery_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting gallery item %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
