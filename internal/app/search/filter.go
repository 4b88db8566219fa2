// Package search builds the predicates behind the student directory, the
// unified album/student search and the typeahead endpoint. Raw request
// parameters are normalized at the boundary (trimmed, empty means absent,
// unknown enum values silently dropped) and turned into squirrel predicate
// trees that the repositories render against PostgreSQL.
package search

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/rbvitales/yearbook-api/internal/app/models"
)

// Columns matched by the free-text directory search.
var studentSearchColumns = []string{"first_name", "last_name", "school_id", "email"}

// Columns matched by the typeahead endpoint.
var typeaheadColumns = []string{"first_name", "last_name", "school_id"}

// Columns matched by the unified search, per entity type.
var (
	unifiedStudentColumns = []string{
		"first_name", "middle_name", "last_name", "school_id",
		"email", "department", "block", "section",
	}
	unifiedAlbumColumns = []string{"title", "description", "department", "year"}
)

// StudentFilters holds the normalized directory filter parameters. Zero-value
// fields mean "not provided" and contribute no clause.
type StudentFilters struct {
	Search     string
	Department models.Department
	Year       models.Year
	Block      string
	Section    string
}

// NewStudentFilters normalizes raw request parameters into StudentFilters.
// Whitespace-only text becomes absent; department and year values outside the
// closed enum sets are dropped rather than rejected, so a bad filter degrades
// to a broader listing instead of failing the request.
func NewStudentFilters(searchText, department, year, block, section string) StudentFilters {
	f := StudentFilters{
		Search:  strings.TrimSpace(searchText),
		Block:   strings.TrimSpace(block),
		Section: strings.TrimSpace(section),
	}
	if d, ok := models.ParseDepartment(strings.TrimSpace(department)); ok {
		f.Department = d
	}
	if y, ok := models.ParseYear(strings.TrimSpace(year)); ok {
		f.Year = y
	}
	return f
}

// Applied reports whether any filter clause will be applied. A search with no
// applied filters is a plain "show all" listing and is not recorded in the
// search history.
func (f StudentFilters) Applied() bool {
	return f.Search != "" || f.Department != "" || f.Year != "" || f.Block != "" || f.Section != ""
}

// Predicate builds the combined predicate: the free-text clause first, then
// each structured field as an independent AND clause. The second return value
// mirrors Applied.
func (f StudentFilters) Predicate() (squirrel.Sqlizer, bool) {
	conds := squirrel.And{}
	if f.Search != "" {
		conds = append(conds, containsAnyColumn(f.Search, studentSearchColumns))
	}
	if f.Department != "" {
		conds = append(conds, squirrel.Eq{"department": string(f.Department)})
	}
	if f.Year != "" {
		conds = append(conds, squirrel.Eq{"year": string(f.Year)})
	}
	if f.Block != "" {
		conds = append(conds, squirrel.Eq{"block": f.Block})
	}
	if f.Section != "" {
		conds = append(conds, squirrel.Eq{"section": f.Section})
	}
	if len(conds) == 0 {
		return nil, false
	}
	return conds, true
}

// TypeaheadPredicate builds the compact predicate used by the typeahead
// endpoint. Returns nil for an empty query.
func TypeaheadPredicate(query string) squirrel.Sqlizer {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	return containsAnyColumn(query, typeaheadColumns)
}

// UnifiedStudentPredicate builds the student side of the unified search.
// Returns nil for an empty query.
func UnifiedStudentPredicate(query string) squirrel.Sqlizer {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	return containsAnyColumn(query, unifiedStudentColumns)
}

// UnifiedAlbumPredicate builds the album side of the unified search. The
// is_active restriction is applied by the repository, not here. Returns nil
// for an empty query.
func UnifiedAlbumPredicate(query string) squirrel.Sqlizer {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	return containsAnyColumn(query, unifiedAlbumColumns)
}

// containsAnyColumn expands a query into an OR of case-insensitive substring
// matches across the given columns.
func containsAnyColumn(query string, columns []string) squirrel.Or {
	pattern := "%" + query + "%"
	or := make(squirrel.Or, 0, len(columns))
	for _, column := range columns {
		or = append(or, squirrel.ILike{column: pattern})
	}
	return or
}
