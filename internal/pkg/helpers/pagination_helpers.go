package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rbvitales/yearbook-api/internal/app/models/dto"
)

// Fixed page sizes per call-site. The typeahead endpoint is hard-capped and
// returns no pagination metadata.
const (
	DirectoryPageSize = 12
	AdminPageSize     = 20
	TypeaheadLimit    = 10
	DefaultPage       = 1 // Pages are 1-based
)

// ParsePageParam extracts the 1-based page parameter from the request.
// Absent, non-numeric or non-positive values default to page 1.
func ParsePageParam(c *gin.Context) int {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return DefaultPage
	}
	return page
}

// TotalPages computes ceil(totalItems/size). Zero items still report a single
// empty page so callers never render "page 1 of 0".
func TotalPages(totalItems int64, size int) int {
	if size <= 0 {
		return DefaultPage
	}
	if totalItems <= 0 {
		return 1
	}
	return int(math.Ceil(float64(totalItems) / float64(size)))
}

// ClampPage clamps a 1-based page number into [1, totalPages]. Values beyond
// the last page land on the last page, never on an error or an empty result.
func ClampPage(page int, totalItems int64, size int) int {
	if page < 1 {
		page = DefaultPage
	}
	if totalPages := TotalPages(totalItems, size); page > totalPages {
		page = totalPages
	}
	return page
}

// CalculateOffsetLimit converts a 1-based page number into a SQL offset/limit pair.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	if page < 1 {
		page = DefaultPage
	}
	return uint64((page - 1) * size), size
}

// NewPaginationInfo creates the standard PaginationInfo DTO for a clamped,
// 1-based page number.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	totalPages := TotalPages(totalItems, size)
	currentPage := ClampPage(page, totalItems, size)

	return dto.PaginationInfo{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
		HasNext:     currentPage < totalPages,
		HasPrevious: currentPage > 1,
	}
}

// CalculateSliceIndices calculates the start and end indices for slicing an
// in-memory result set for pagination. The page number is clamped first, so a
// page beyond the end yields the last page's slice rather than an empty one.
func CalculateSliceIndices(page, size, totalItems int) (start, end int) {
	if size <= 0 {
		return 0, 0
	}
	page = ClampPage(page, int64(totalItems), size)

	start = (page - 1) * size
	end = start + size

	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}
	return start, end
}
