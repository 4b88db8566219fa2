package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rbvitales/yearbook-api/internal/app/models"
	"github.com/rbvitales/yearbook-api/internal/app/models/dto"
	"github.com/rbvitales/yearbook-api/internal/app/search"
	"github.com/rbvitales/yearbook-api/internal/pkg/apperrors"
	"github.com/rbvitales/yearbook-api/internal/pkg/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStudentService(students *fakeStudentStore, history *fakeHistoryStore) StudentService {
	return NewStudentService(students, history, &fakeStorage{})
}

func TestDirectoryRecordsSearchHistory(t *testing.T) {
	students := newFakeStudentStore()
	students.directoryStudents = []models.Student{{ID: 1, FirstName: "Maria"}}
	students.directoryTotal = 1
	history := &fakeHistoryStore{}
	svc := newStudentService(students, history)

	filters := search.NewStudentFilters("maria", "", "", "", "")
	_, pagination, err := svc.Directory(context.Background(), 42, filters, 1)
	require.NoError(t, err)

	assert.Equal(t, helpers.DirectoryPageSize, students.lastPageSize)
	assert.Equal(t, 1, pagination.CurrentPage)

	require.Len(t, history.created, 1)
	assert.Equal(t, int64(42), history.created[0].AccountID)
	assert.Equal(t, "maria", history.created[0].SearchQuery)
	assert.Equal(t, models.SearchTypeStudent, history.created[0].SearchType)
}

func TestDirectoryStructuredFiltersNotRecorded(t *testing.T) {
	students := newFakeStudentStore()
	history := &fakeHistoryStore{}
	svc := newStudentService(students, history)

	// Department and year narrow the listing but carry no query text
	filters := search.NewStudentFilters("", "BSIT", "2025", "", "")
	_, _, err := svc.Directory(context.Background(), 42, filters, 1)
	require.NoError(t, err)

	assert.Empty(t, history.created)
}

func TestDirectorySwallowsHistoryFailure(t *testing.T) {
	students := newFakeStudentStore()
	students.directoryStudents = []models.Student{{ID: 1}}
	students.directoryTotal = 1
	history := &fakeHistoryStore{createErr: errors.New("history table is on fire")}
	svc := newStudentService(students, history)

	filters := search.NewStudentFilters("maria", "", "", "", "")
	result, _, err := svc.Directory(context.Background(), 42, filters, 1)

	require.NoError(t, err, "a failed history write never fails the search")
	assert.Len(t, result, 1)
}

func TestAdminListUsesAdminPageSizeAndNoHistory(t *testing.T) {
	students := newFakeStudentStore()
	history := &fakeHistoryStore{}
	svc := newStudentService(students, history)

	filters := search.NewStudentFilters("maria", "", "", "", "")
	_, _, err := svc.AdminList(context.Background(), filters, 1)
	require.NoError(t, err)

	assert.Equal(t, helpers.AdminPageSize, students.lastPageSize)
	assert.Empty(t, history.created, "staff browsing is never recorded")
}

func TestTypeaheadEmptyQuery(t *testing.T) {
	students := newFakeStudentStore()
	svc := newStudentService(students, &fakeHistoryStore{})

	results, err := svc.Typeahead(context.Background(), "   ")
	require.NoError(t, err)

	assert.Empty(t, results)
	assert.Zero(t, students.searchCalls, "an empty query never hits the store")
}

func TestTypeaheadCapAndMapping(t *testing.T) {
	students := newFakeStudentStore()
	students.searchStudents = []models.Student{
		{ID: 7, FirstName: "Maria", MiddleName: "Reyes", LastName: "Santos", SchoolID: "S100", Department: models.DepartmentBSIT, Year: models.Year2024, Section: "1"},
	}
	svc := newStudentService(students, &fakeHistoryStore{})

	results, err := svc.Typeahead(context.Background(), "mar")
	require.NoError(t, err)

	assert.Equal(t, helpers.TypeaheadLimit, students.lastLimit)
	require.Len(t, results, 1)
	assert.Equal(t, dto.TypeaheadResult{
		ID:         7,
		Name:       "Maria Reyes Santos",
		SchoolID:   "S100",
		Department: "BSIT",
		Year:       "2024",
		Section:    "1",
	}, results[0])
}

func TestCreateStudentRejectsUnknownDepartment(t *testing.T) {
	svc := newStudentService(newFakeStudentStore(), &fakeHistoryStore{})

	_, err := svc.Create(context.Background(), dto.CreateStudentRequest{
		FirstName: "Juan", LastName: "Cruz", SchoolID: "S200",
		Email: "juan@school.edu.ph", Department: "LAW", Year: "2024",
		Block: "A", Section: "1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestBulkDelete(t *testing.T) {
	students := newFakeStudentStore()
	svc := newStudentService(students, &fakeHistoryStore{})

	result, err := svc.Bulk(context.Background(), dto.BulkStudentRequest{
		Action:     dto.BulkActionDelete,
		StudentIDs: []int64{1, 2, 3},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.Affected)
	assert.Equal(t, []int64{1, 2, 3}, students.deletedIDs)
}

func TestBulkHonorRollPrefix(t *testing.T) {
	students := newFakeStudentStore()
	svc := newStudentService(students, &fakeHistoryStore{})

	result, err := svc.Bulk(context.Background(), dto.BulkStudentRequest{
		Action:     dto.BulkActionHonorRoll,
		StudentIDs: []int64{5},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Affected)
	assert.Equal(t, "Honor Roll Student - ", students.appliedPrefix)
}

func TestBulkRejectsUnknownActionAndEmptySelection(t *testing.T) {
	svc := newStudentService(newFakeStudentStore(), &fakeHistoryStore{})

	_, err := svc.Bulk(context.Background(), dto.BulkStudentRequest{Action: "archive", StudentIDs: []int64{1}})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.Bulk(context.Background(), dto.BulkStudentRequest{Action: dto.BulkActionDelete})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}
