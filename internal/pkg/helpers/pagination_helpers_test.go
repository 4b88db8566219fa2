package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func pageContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParsePageParam(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"absent defaults to 1", "", 1},
		{"valid page", "page=3", 3},
		{"zero defaults to 1", "page=0", 1},
		{"negative defaults to 1", "page=-2", 1},
		{"non-numeric defaults to 1", "page=abc", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePageParam(pageContext(t, tt.query)))
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, DirectoryPageSize), "zero items still report one page")
	assert.Equal(t, 1, TotalPages(12, 12))
	assert.Equal(t, 2, TotalPages(13, 12))
	assert.Equal(t, 3, TotalPages(25, 12))
	assert.Equal(t, 1, TotalPages(5, 0), "degenerate size falls back to one page")
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 25, 12))
	assert.Equal(t, 2, ClampPage(2, 25, 12))
	assert.Equal(t, 3, ClampPage(99, 25, 12), "beyond the end lands on the last page")
	assert.Equal(t, 1, ClampPage(5, 0, 12), "empty result set clamps to the single empty page")
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(1, 12)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, 12, limit)

	offset, limit = CalculateOffsetLimit(3, 20)
	assert.Equal(t, uint64(40), offset)
	assert.Equal(t, 20, limit)

	offset, _ = CalculateOffsetLimit(-1, 12)
	assert.Equal(t, uint64(0), offset)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(25, 2, 12)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 12, info.PageSize)
	assert.Equal(t, int64(25), info.TotalItems)
	assert.True(t, info.HasNext)
	assert.True(t, info.HasPrevious)

	info = NewPaginationInfo(0, 1, 12)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 1, info.TotalPages)
	assert.False(t, info.HasNext)
	assert.False(t, info.HasPrevious)

	info = NewPaginationInfo(25, 99, 12)
	assert.Equal(t, 3, info.CurrentPage, "overflowing page is clamped to the last page")
	assert.False(t, info.HasNext)
	assert.True(t, info.HasPrevious)
}

func TestCalculateSliceIndices(t *testing.T) {
	start, end := CalculateSliceIndices(1, 12, 25)
	assert.Equal(t, 0, start)
	assert.Equal(t, 12, end)

	start, end = CalculateSliceIndices(3, 12, 25)
	assert.Equal(t, 24, start)
	assert.Equal(t, 25, end)

	start, end = CalculateSliceIndices(9, 12, 25)
	assert.Equal(t, 24, start, "overflowing page yields the last page's slice")
	assert.Equal(t, 25, end)

	start, end = CalculateSliceIndices(1, 12, 0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}
