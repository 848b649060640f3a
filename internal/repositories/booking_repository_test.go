package repositories

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hzkfs012/zapatoofficial/internal/models"
)

func TestBuildBookingListQueryPaginationWindow(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		wantLimit  int
		wantOffset int
	}{
		{"first page", 0, 10, 10, 0},
		{"fourth page", 3, 10, 10, 30},
		{"custom size", 2, 25, 25, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildBookingListQuery(models.BookingFilters{Page: tt.page, PageSize: tt.pageSize})

			assert.Contains(t, query, "ORDER BY created_at DESC")
			assert.Contains(t, query, "LIMIT")
			require.NotEmpty(t, args)
			assert.Equal(t, tt.wantLimit, args[0])

			if tt.wantOffset == 0 {
				assert.NotContains(t, query, "OFFSET")
				assert.Len(t, args, 1)
			} else {
				assert.Contains(t, query, "OFFSET")
				require.Len(t, args, 2)
				assert.Equal(t, tt.wantOffset, args[1])
			}
		})
	}
}

func TestBuildBookingListQueryNoPaginationWhenSizeZero(t *testing.T) {
	query, args := buildBookingListQuery(models.BookingFilters{})

	assert.NotContains(t, query, "LIMIT")
	assert.NotContains(t, query, "OFFSET")
	assert.Empty(t, args)
}

func TestBuildBookingListQueryFilters(t *testing.T) {
	status := "pending"
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)

	query, args := buildBookingListQuery(models.BookingFilters{
		Status:   &status,
		DateFrom: &from,
		DateTo:   &to,
		Page:     1,
		PageSize: 10,
	})

	assert.Contains(t, query, "status = $1")
	assert.Contains(t, query, "created_at >= $2")
	assert.Contains(t, query, "created_at < $3", "upper bound is exclusive so a row at the next midnight is excluded")
	assert.NotContains(t, query, "created_at <=")
	assert.Equal(t, []interface{}{status, from, to, 10, 10}, args)
}

func TestGalleryListQueryOrdering(t *testing.T) {
	idxOrder := strings.Index(galleryListQuery, "display_order ASC NULLS LAST")
	idxCreated := strings.Index(galleryListQuery, "created_at DESC")

	require.GreaterOrEqual(t, idxOrder, 0)
	require.GreaterOrEqual(t, idxCreated, 0)
	assert.Less(t, idxOrder, idxCreated, "display_order ranks before the created_at tie-break")
	assert.Contains(t, galleryListQuery, "ORDER BY display_order ASC NULLS LAST, created_at DESC")
}
