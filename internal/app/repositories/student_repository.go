package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rbvitales/yearbook-api/internal/app/models"
	"github.com/rbvitales/yearbook-api/internal/pkg/apperrors"
	"github.com/rbvitales/yearbook-api/internal/pkg/dberrors"
	"github.com/rbvitales/yearbook-api/internal/pkg/helpers"
	"github.com/rbvitales/yearbook-api/internal/pkg/logger"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var studentColumns = []string{
	"id", "account_id", "first_name", "middle_name", "last_name", "school_id",
	"email", "department", "year", "block", "section", "profile_photo",
	"achievements", "created_at",
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID, &student.AccountID, &student.FirstName, &student.MiddleName,
		&student.LastName, &student.SchoolID, &student.Email, &student.Department,
		&student.Year, &student.Block, &student.Section, &student.ProfilePhoto,
		&student.Achievements, &student.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Create creates a new student record. A racing duplicate school ID fails
// with a conflict error rather than overwriting the existing record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("account_id", "first_name", "middle_name", "last_name", "school_id",
			"email", "department", "year", "block", "section", "profile_photo", "achievements").
		Values(student.AccountID, student.FirstName, student.MiddleName, student.LastName,
			student.SchoolID, student.Email, student.Department, student.Year,
			student.Block, student.Section, student.ProfilePhoto, student.Achievements).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_school_id_key") {
			logger.Warn().Str("schoolID", student.SchoolID).Msg("Attempted to create student with duplicate school ID")
			return apperrors.ErrSchoolIDAlreadyExists
		}
		logger.Error().Err(err).Str("schoolID", student.SchoolID).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByAccountID retrieves the student profile owned by an account
func (r *StudentRepository) GetByAccountID(ctx context.Context, accountID int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"account_id": accountID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// Update updates an existing student record
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		Set("first_name", student.FirstName).
		Set("middle_name", student.MiddleName).
		Set("last_name", student.LastName).
		Set("school_id", student.SchoolID).
		Set("email", student.Email).
		Set("department", student.Department).
		Set("year", student.Year).
		Set("block", student.Block).
		Set("section", student.Section).
		Set("profile_photo", student.ProfilePhoto).
		Set("achievements", student.Achievements).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_school_id_key") {
			return apperrors.ErrSchoolIDAlreadyExists
		}
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student record. Photos referencing the student keep
// existing with a nulled student reference (enforced by the schema).
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// DeleteByIDs removes a batch of student records and returns how many were deleted
func (r *StudentRepository) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build bulk delete query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error deleting students: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// PrefixAchievements prepends a marker to the achievements of a batch of
// students and returns how many rows were updated.
func (r *StudentRepository) PrefixAchievements(ctx context.Context, ids []int64, prefix string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := r.sb.Update("students").
		Set("achievements", squirrel.Expr("? || achievements", prefix)).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build bulk update query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error updating students: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// Directory runs a filtered, paginated directory query. The predicate may be
// nil for an unfiltered listing. Pages beyond the last clamp to the last
// page. Ordering is first name, last name with the primary key as an
// explicit tiebreak so identical names page deterministically.
func (r *StudentRepository) Directory(ctx context.Context, predicate squirrel.Sqlizer, page, pageSize int) ([]models.Student, int64, error) {
	countSelect := r.sb.Select("COUNT(*)").From("students")
	baseSelect := r.sb.Select(studentColumns...).From("students")

	if predicate != nil {
		countSelect = countSelect.Where(predicate)
		baseSelect = baseSelect.Where(predicate)
	}

	countSql, countArgs, err := countSelect.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count students SQL")
		return nil, 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count students query")
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	if totalItems == 0 {
		return []models.Student{}, 0, nil
	}

	page = helpers.ClampPage(page, totalItems, pageSize)
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	querySql, queryArgs, err := baseSelect.
		OrderBy("first_name ASC", "last_name ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building directory SQL")
		return nil, 0, fmt.Errorf("failed to build directory query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing directory query")
		return nil, 0, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	students := make([]models.Student, 0, limit)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, *student)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, totalItems, nil
}

// Search returns all students matching the predicate, ordered by first name,
// last name and id, without pagination. Used by the unified search.
func (r *StudentRepository) Search(ctx context.Context, predicate squirrel.Sqlizer, limit int) ([]models.Student, error) {
	baseSelect := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("first_name ASC", "last_name ASC", "id ASC")

	if predicate != nil {
		baseSelect = baseSelect.Where(predicate)
	}
	if limit > 0 {
		baseSelect = baseSelect.Limit(uint64(limit))
	}

	sql, args, err := baseSelect.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build search students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, *student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// GetRecent returns the most recently created students
func (r *StudentRepository) GetRecent(ctx context.Context, limit int) ([]models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, *student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// CountAll returns the total number of students
func (r *StudentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
