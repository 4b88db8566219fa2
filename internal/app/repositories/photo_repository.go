package repositories

import (
	"context"
	"database/sql"
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

// PhotoRepository handles photo database operations
type PhotoRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPhotoRepository creates a new PhotoRepository
func NewPhotoRepository(db *pgxpool.Pool) *PhotoRepository {
	return &PhotoRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var photoColumns = []string{
	"p.id", "p.album_id", "p.student_id", "p.image", "p.caption",
	"p.is_featured", "p.uploaded_by", "p.created_at",
}

func scanPhoto(row pgx.Row) (*models.Photo, error) {
	var photo models.Photo
	err := row.Scan(
		&photo.ID, &photo.AlbumID, &photo.StudentID, &photo.Image,
		&photo.Caption, &photo.IsFeatured, &photo.UploadedBy, &photo.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// Create creates a new photo in an album
func (r *PhotoRepository) Create(ctx context.Context, photo *models.Photo) error {
	query := `
		INSERT INTO photos (album_id, student_id, image, caption, is_featured, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		photo.AlbumID, photo.StudentID, photo.Image, photo.Caption,
		photo.IsFeatured, photo.UploadedBy,
	).Scan(&photo.ID, &photo.CreatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAlbumNotFound
		}
		logger.Error().Err(err).Int64("albumID", photo.AlbumID).Msg("Error executing create photo query")
		return fmt.Errorf("error creating photo: %w", err)
	}

	return nil
}

// GetByID retrieves a photo with its album title and associated student name
func (r *PhotoRepository) GetByID(ctx context.Context, id int64) (*models.Photo, error) {
	columns := append(append([]string{}, photoColumns...),
		"a.title", "s.first_name", "s.middle_name", "s.last_name", "s.school_id")

	sqlStr, args, err := r.sb.Select(columns...).
		From("photos p").
		Join("albums a ON p.album_id = a.id").
		LeftJoin("students s ON p.student_id = s.id").
		Where(squirrel.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get photo query: %w", err)
	}

	var photo models.Photo
	var albumTitle string
	var firstName, middleName, lastName, schoolID sql.NullString

	err = r.db.QueryRow(ctx, sqlStr, args...).Scan(
		&photo.ID, &photo.AlbumID, &photo.StudentID, &photo.Image,
		&photo.Caption, &photo.IsFeatured, &photo.UploadedBy, &photo.CreatedAt,
		&albumTitle, &firstName, &middleName, &lastName, &schoolID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("error retrieving photo: %w", err)
	}

	photo.Album = &models.Album{ID: photo.AlbumID, Title: albumTitle}
	if photo.StudentID != nil && firstName.Valid {
		photo.Student = &models.Student{
			ID:         *photo.StudentID,
			FirstName:  firstName.String,
			MiddleName: middleName.String,
			LastName:   lastName.String,
			SchoolID:   schoolID.String,
		}
	}

	return &photo, nil
}

// ListByAlbum runs a paginated photo listing for one album. Ordering is
// always featured first, then newest first, with the primary key as an
// explicit tiebreak for photos uploaded in the same instant.
func (r *PhotoRepository) ListByAlbum(ctx context.Context, albumID int64, page, pageSize int) ([]models.Photo, int64, error) {
	where := squirrel.Eq{"p.album_id": albumID}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").
		From("photos p").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count photos query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		return nil, 0, fmt.Errorf("failed to count photos: %w", err)
	}

	if totalItems == 0 {
		return []models.Photo{}, 0, nil
	}

	page = helpers.ClampPage(page, totalItems, pageSize)
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	querySql, queryArgs, err := r.sb.Select(photoColumns...).
		From("photos p").
		Where(where).
		OrderBy("p.is_featured DESC", "p.created_at DESC", "p.id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list photos query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query photos: %w", err)
	}
	defer rows.Close()

	photos := make([]models.Photo, 0, limit)
	for rows.Next() {
		photo, err := scanPhoto(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan photo row: %w", err)
		}
		photos = append(photos, *photo)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating photo rows: %w", err)
	}

	return photos, totalItems, nil
}

// ImageRefsByAlbum returns the stored image references of every photo in an
// album, used to clean up files before the rows are cascade deleted.
func (r *PhotoRepository) ImageRefsByAlbum(ctx context.Context, albumID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT image FROM photos WHERE album_id = $1`, albumID)
	if err != nil {
		return nil, fmt.Errorf("failed to query photo images: %w", err)
	}
	defer rows.Close()

	refs := make([]string, 0)
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, fmt.Errorf("failed to scan photo image row: %w", err)
		}
		refs = append(refs, ref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photo image rows: %w", err)
	}

	return refs, nil
}

// Delete removes a photo
func (r *PhotoRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting photo: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPhotoNotFound
	}

	return nil
}

// CountAll returns the total number of photos
func (r *PhotoRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM photos`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting photos: %w", err)
	}
	return count, nil
}
