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

// AlbumRepository handles album database operations
type AlbumRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAlbumRepository creates a new AlbumRepository
func NewAlbumRepository(db *pgxpool.Pool) *AlbumRepository {
	return &AlbumRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var albumColumns = []string{
	"a.id", "a.title", "a.description", "a.department", "a.year", "a.cover_photo",
	"a.is_active", "a.created_at", "a.updated_at",
	"(SELECT COUNT(*) FROM photos p WHERE p.album_id = a.id) AS photo_count",
}

func scanAlbum(row pgx.Row) (*models.Album, error) {
	var album models.Album
	err := row.Scan(
		&album.ID, &album.Title, &album.Description, &album.Department, &album.Year,
		&album.CoverPhoto, &album.IsActive, &album.CreatedAt, &album.UpdatedAt,
		&album.PhotoCount,
	)
	if err != nil {
		return nil, err
	}
	return &album, nil
}

// Create creates a new album. The (department, year) pair is unique; a
// duplicate surfaces as a conflict error.
func (r *AlbumRepository) Create(ctx context.Context, album *models.Album) error {
	query := `
		INSERT INTO albums (title, description, department, year, cover_photo, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		album.Title, album.Description, album.Department, album.Year,
		album.CoverPhoto, album.IsActive,
	).Scan(&album.ID, &album.CreatedAt, &album.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "albums_department_year_key") {
			logger.Warn().Str("department", string(album.Department)).Str("year", string(album.Year)).
				Msg("Attempted to create duplicate album for department/year")
			return apperrors.ErrAlbumAlreadyExists
		}
		logger.Error().Err(err).Str("title", album.Title).Msg("Error executing create album query")
		return fmt.Errorf("error creating album: %w", err)
	}

	return nil
}

// GetByID retrieves an album by ID. When onlyActive is set, hidden albums
// are reported as not found, matching the public album pages.
func (r *AlbumRepository) GetByID(ctx context.Context, id int64, onlyActive bool) (*models.Album, error) {
	where := squirrel.And{squirrel.Eq{"a.id": id}}
	if onlyActive {
		where = append(where, squirrel.Eq{"a.is_active": true})
	}

	sql, args, err := r.sb.Select(albumColumns...).
		From("albums a").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get album query: %w", err)
	}

	album, err := scanAlbum(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAlbumNotFound
		}
		return nil, fmt.Errorf("error retrieving album: %w", err)
	}

	return album, nil
}

// Update updates an existing album
func (r *AlbumRepository) Update(ctx context.Context, album *models.Album) error {
	sql, args, err := r.sb.Update("albums").
		Set("title", album.Title).
		Set("description", album.Description).
		Set("department", album.Department).
		Set("year", album.Year).
		Set("cover_photo", album.CoverPhoto).
		Set("is_active", album.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": album.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update album query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "albums_department_year_key") {
			return apperrors.ErrAlbumAlreadyExists
		}
		logger.Error().Err(err).Int64("albumID", album.ID).Msg("Error executing update album query")
		return fmt.Errorf("error updating album: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAlbumNotFound
	}

	return nil
}

// Delete removes an album. Its photos are cascade-deleted by the schema.
func (r *AlbumRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting album: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAlbumNotFound
	}

	return nil
}

// List runs a filtered, paginated album listing ordered by creation time
// descending with the primary key as an explicit tiebreak. When onlyActive
// is set, hidden albums are excluded (the public listing); the admin listing
// passes false to include them.
func (r *AlbumRepository) List(ctx context.Context, predicate squirrel.Sqlizer, onlyActive bool, page, pageSize int) ([]models.Album, int64, error) {
	where := squirrel.And{}
	if onlyActive {
		where = append(where, squirrel.Eq{"a.is_active": true})
	}
	if predicate != nil {
		where = append(where, predicate)
	}

	countSelect := r.sb.Select("COUNT(*)").From("albums a")
	baseSelect := r.sb.Select(albumColumns...).From("albums a")
	if len(where) > 0 {
		countSelect = countSelect.Where(where)
		baseSelect = baseSelect.Where(where)
	}

	countSql, countArgs, err := countSelect.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count albums SQL")
		return nil, 0, fmt.Errorf("failed to build count albums query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count albums query")
		return nil, 0, fmt.Errorf("failed to count albums: %w", err)
	}

	if totalItems == 0 {
		return []models.Album{}, 0, nil
	}

	page = helpers.ClampPage(page, totalItems, pageSize)
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	querySql, queryArgs, err := baseSelect.
		OrderBy("a.created_at DESC", "a.id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list albums SQL")
		return nil, 0, fmt.Errorf("failed to build list albums query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list albums query")
		return nil, 0, fmt.Errorf("failed to query albums: %w", err)
	}
	defer rows.Close()

	albums := make([]models.Album, 0, limit)
	for rows.Next() {
		album, err := scanAlbum(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan album row: %w", err)
		}
		albums = append(albums, *album)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating album rows: %w", err)
	}

	return albums, totalItems, nil
}

// Search returns all active albums matching the predicate, newest first,
// without pagination. Used by the unified search.
func (r *AlbumRepository) Search(ctx context.Context, predicate squirrel.Sqlizer) ([]models.Album, error) {
	where := squirrel.And{squirrel.Eq{"a.is_active": true}}
	if predicate != nil {
		where = append(where, predicate)
	}

	sql, args, err := r.sb.Select(albumColumns...).
		From("albums a").
		Where(where).
		OrderBy("a.created_at DESC", "a.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build search albums query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query albums: %w", err)
	}
	defer rows.Close()

	var albums []models.Album
	for rows.Next() {
		album, err := scanAlbum(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan album row: %w", err)
		}
		albums = append(albums, *album)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating album rows: %w", err)
	}

	return albums, nil
}

// GetRecent returns the most recently created albums
func (r *AlbumRepository) GetRecent(ctx context.Context, limit int) ([]models.Album, error) {
	sql, args, err := r.sb.Select(albumColumns...).
		From("albums a").
		OrderBy("a.created_at DESC", "a.id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent albums query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent albums: %w", err)
	}
	defer rows.Close()

	var albums []models.Album
	for rows.Next() {
		album, err := scanAlbum(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan album row: %w", err)
		}
		albums = append(albums, *album)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating album rows: %w", err)
	}

	return albums, nil
}

// CountAll returns the total number of albums, including hidden ones
func (r *AlbumRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM albums`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting albums: %w", err)
	}
	return count, nil
}
