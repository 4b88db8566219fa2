package services

import (
	"context"
	"strings"

	"github.com/rbvitales/yearbook-api/internal/app/models"
	"github.com/rbvitales/yearbook-api/internal/app/models/dto"
	"github.com/rbvitales/yearbook-api/internal/app/search"
	"github.com/rbvitales/yearbook-api/internal/pkg/apperrors"
	"github.com/rbvitales/yearbook-api/internal/pkg/filestorage"
	"github.com/rbvitales/yearbook-api/internal/pkg/helpers"
	"github.com/rbvitales/yearbook-api/internal/pkg/logger"
	"github.com/rbvitales/yearbook-api/internal/pkg/validation"
)

// Achievements prefix applied by the honor roll bulk action.
const honorRollPrefix = "Honor Roll Student - "

// StudentService handles the student directory, typeahead and record management
type StudentService interface {
	Directory(ctx context.Context, accountID int64, filters search.StudentFilters, page int) ([]models.Student, dto.PaginationInfo, error)
	AdminList(ctx context.Context, filters search.StudentFilters, page int) ([]models.Student, dto.PaginationInfo, error)
	Typeahead(ctx context.Context, query string) ([]dto.TypeaheadResult, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error)
	Update(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
	Bulk(ctx context.Context, req dto.BulkStudentRequest) (*dto.BulkStudentResponse, error)
}

type studentService struct {
	students StudentStore
	history  SearchHistoryStore
	storage  filestorage.FileStorage
}

// NewStudentService creates a new StudentService
func NewStudentService(students StudentStore, history SearchHistoryStore, storage filestorage.FileStorage) StudentService {
	return &studentService{
		students: students,
		history:  history,
		storage:  storage,
	}
}

// Directory runs the student-facing directory listing. Free-text searches are
// recorded in the account's search history; a failed recording never fails
// the search itself.
func (s *studentService) Directory(ctx context.Context, accountID int64, filters search.StudentFilters, page int) ([]models.Student, dto.PaginationInfo, error) {
	predicate, _ := filters.Predicate()

	students, totalItems, err := s.students.Directory(ctx, predicate, page, helpers.DirectoryPageSize)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	s.recordSearch(ctx, accountID, filters.Search, models.SearchTypeStudent)

	return students, helpers.NewPaginationInfo(totalItems, page, helpers.DirectoryPageSize), nil
}

// AdminList runs the staff listing over the same filters with the larger
// admin page size. Staff browsing is not recorded in the search history.
func (s *studentService) AdminList(ctx context.Context, filters search.StudentFilters, page int) ([]models.Student, dto.PaginationInfo, error) {
	predicate, _ := filters.Predicate()

	students, totalItems, err := s.students.Directory(ctx, predicate, page, helpers.AdminPageSize)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return students, helpers.NewPaginationInfo(totalItems, page, helpers.AdminPageSize), nil
}

// Typeahead returns up to TypeaheadLimit compact matches for a partial query.
// An empty query returns no matches.
func (s *studentService) Typeahead(ctx context.Context, query string) ([]dto.TypeaheadResult, error) {
	predicate := search.TypeaheadPredicate(query)
	if predicate == nil {
		return []dto.TypeaheadResult{}, nil
	}

	students, err := s.students.Search(ctx, predicate, helpers.TypeaheadLimit)
	if err != nil {
		return nil, err
	}

	results := make([]dto.TypeaheadResult, 0, len(students))
	for i := range students {
		st := &students[i]
		results = append(results, dto.TypeaheadResult{
			ID:         st.ID,
			Name:       st.FullName(),
			SchoolID:   st.SchoolID,
			Department: string(st.Department),
			Year:       string(st.Year),
			Section:    st.Section,
		})
	}

	return results, nil
}

// GetByID retrieves a single student record
func (s *studentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// Create adds a staff-entered student record with no linked account
func (s *studentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	student, err := studentFromRequest(req.FirstName, req.MiddleName, req.LastName, req.SchoolID,
		req.Email, req.Department, req.Year, req.Block, req.Section, req.Achievements)
	if err != nil {
		return nil, err
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Update replaces a student record's fields
func (s *studentService) Update(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*models.Student, error) {
	existing, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student, err := studentFromRequest(req.FirstName, req.MiddleName, req.LastName, req.SchoolID,
		req.Email, req.Department, req.Year, req.Block, req.Section, req.Achievements)
	if err != nil {
		return nil, err
	}

	student.ID = existing.ID
	student.AccountID = existing.AccountID
	student.ProfilePhoto = existing.ProfilePhoto
	student.CreatedAt = existing.CreatedAt

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Delete removes a student record and its stored profile photo
func (s *studentService) Delete(ctx context.Context, id int64) error {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}

	if student.ProfilePhoto != nil {
		if err := s.storage.DeleteFile(*student.ProfilePhoto); err != nil {
			logger.Warn().Err(err).Int64("studentID", id).Msg("Could not delete profile photo file")
		}
	}

	return nil
}

// Bulk applies one action to a set of student records
func (s *studentService) Bulk(ctx context.Context, req dto.BulkStudentRequest) (*dto.BulkStudentResponse, error) {
	if len(req.StudentIDs) == 0 {
		return nil, apperrors.NewBadRequestError("no students selected")
	}

	var affected int64
	var err error

	switch req.Action {
	case dto.BulkActionDelete:
		affected, err = s.students.DeleteByIDs(ctx, req.StudentIDs)
	case dto.BulkActionHonorRoll:
		affected, err = s.students.PrefixAchievements(ctx, req.StudentIDs, honorRollPrefix)
	default:
		return nil, apperrors.NewBadRequestError("unknown bulk action: " + req.Action)
	}
	if err != nil {
		return nil, err
	}

	return &dto.BulkStudentResponse{Action: req.Action, Affected: affected}, nil
}

// recordSearch appends a history row for a non-empty query. Failures are
// logged and swallowed so a broken audit trail never breaks search.
func (s *studentService) recordSearch(ctx context.Context, accountID int64, query string, searchType models.SearchType) {
	query = strings.TrimSpace(query)
	if query == "" || accountID <= 0 {
		return
	}

	history := &models.SearchHistory{
		AccountID:   accountID,
		SearchQuery: query,
		SearchType:  searchType,
	}
	if err := s.history.Create(ctx, history); err != nil {
		logger.Warn().Err(err).Int64("accountID", accountID).Msg("Could not record search history")
	}
}

func studentFromRequest(firstName, middleName, lastName, schoolID, email, department, year, block, section, achievements string) (*models.Student, error) {
	dept, ok := models.ParseDepartment(strings.TrimSpace(department))
	if !ok {
		return nil, apperrors.NewBadRequestError("invalid department: " + department)
	}
	yr, ok := models.ParseYear(strings.TrimSpace(year))
	if !ok {
		return nil, apperrors.NewBadRequestError("invalid year: " + year)
	}
	if !validation.IsValidSchoolID(strings.TrimSpace(schoolID)) {
		return nil, apperrors.NewBadRequestError("invalid school ID format")
	}
	if !validation.IsValidEmail(strings.TrimSpace(email)) {
		return nil, apperrors.ErrInvalidEmail
	}

	return &models.Student{
		FirstName:    strings.TrimSpace(firstName),
		MiddleName:   strings.TrimSpace(middleName),
		LastName:     strings.TrimSpace(lastName),
		SchoolID:     strings.TrimSpace(schoolID),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Department:   dept,
		Year:         yr,
		Block:        strings.TrimSpace(block),
		Section:      strings.TrimSpace(section),
		Achievements: strings.TrimSpace(achievements),
	}, nil
}
