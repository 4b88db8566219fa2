package search

import (
	"testing"

	"github.com/rbvitales/yearbook-api/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudentFiltersNormalization(t *testing.T) {
	f := NewStudentFilters("  maria  ", " BSIT ", "2024", " A ", " 1 ")
	assert.Equal(t, "maria", f.Search)
	assert.Equal(t, models.DepartmentBSIT, f.Department)
	assert.Equal(t, models.Year2024, f.Year)
	assert.Equal(t, "A", f.Block)
	assert.Equal(t, "1", f.Section)
}

func TestNewStudentFiltersDropsUnknownEnums(t *testing.T) {
	f := NewStudentFilters("", "LAW", "1999", "", "")
	assert.Empty(t, f.Department, "unknown department is treated as not provided")
	assert.Empty(t, f.Year, "unknown year is treated as not provided")
	assert.False(t, f.Applied())
}

func TestStudentFiltersWhitespaceIsAbsent(t *testing.T) {
	f := NewStudentFilters("   ", "", "", "  ", "")
	assert.False(t, f.Applied())

	predicate, applied := f.Predicate()
	assert.Nil(t, predicate)
	assert.False(t, applied)
}

func TestStudentFiltersSearchPredicate(t *testing.T) {
	f := NewStudentFilters("maria", "", "", "", "")

	predicate, applied := f.Predicate()
	require.True(t, applied)

	sql, args, err := predicate.ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "first_name ILIKE ?")
	assert.Contains(t, sql, "last_name ILIKE ?")
	assert.Contains(t, sql, "school_id ILIKE ?")
	assert.Contains(t, sql, "email ILIKE ?")
	require.Len(t, args, 4)
	for _, arg := range args {
		assert.Equal(t, "%maria%", arg)
	}
}

func TestStudentFiltersCombinedPredicate(t *testing.T) {
	f := NewStudentFilters("cruz", "STEM", "2023", "B", "2")

	predicate, applied := f.Predicate()
	require.True(t, applied)

	sql, args, err := predicate.ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "department = ?")
	assert.Contains(t, sql, "year = ?")
	assert.Contains(t, sql, "block = ?")
	assert.Contains(t, sql, "section = ?")
	// 4 search pattern args plus 4 structured filter args
	assert.Len(t, args, 8)
	assert.Contains(t, args, "STEM")
	assert.Contains(t, args, "2023")
	assert.Contains(t, args, "B")
	assert.Contains(t, args, "2")
}

func TestStudentFiltersStructuredOnly(t *testing.T) {
	f := NewStudentFilters("", "ABM", "", "", "")

	predicate, applied := f.Predicate()
	require.True(t, applied)

	sql, args, err := predicate.ToSql()
	require.NoError(t, err)
	assert.NotContains(t, sql, "ILIKE")
	assert.Equal(t, []interface{}{"ABM"}, args)
}

func TestTypeaheadPredicate(t *testing.T) {
	assert.Nil(t, TypeaheadPredicate("   "))

	predicate := TypeaheadPredicate(" S10 ")
	require.NotNil(t, predicate)

	sql, args, err := predicate.ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "first_name ILIKE ?")
	assert.Contains(t, sql, "last_name ILIKE ?")
	assert.Contains(t, sql, "school_id ILIKE ?")
	assert.NotContains(t, sql, "email", "typeahead never matches on email")
	assert.Len(t, args, 3)
}

func TestUnifiedStudentPredicate(t *testing.T) {
	assert.Nil(t, UnifiedStudentPredicate(""))

	predicate := UnifiedStudentPredicate("bsit")
	require.NotNil(t, predicate)

	sql, args, err := predicate.ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "middle_name ILIKE ?")
	assert.Contains(t, sql, "department ILIKE ?")
	assert.Contains(t, sql, "block ILIKE ?")
	assert.Contains(t, sql, "section ILIKE ?")
	assert.Len(t, args, 8)
}

func TestUnifiedAlbumPredicate(t *testing.T) {
	assert.Nil(t, UnifiedAlbumPredicate("  "))

	predicate := UnifiedAlbumPredicate("2024")
	require.NotNil(t, predicate)

	sql, args, err := predicate.ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "title ILIKE ?")
	assert.Contains(t, sql, "description ILIKE ?")
	assert.Contains(t, sql, "department ILIKE ?")
	assert.Contains(t, sql, "year ILIKE ?")
	assert.Len(t, args, 4)
}
