package services

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/rbvitales/yearbook-api/internal/app/models"
	"github.com/rbvitales/yearbook-api/internal/app/models/dto"
	"github.com/rbvitales/yearbook-api/internal/app/search"
	"github.com/rbvitales/yearbook-api/internal/pkg/apperrors"
	"github.com/rbvitales/yearbook-api/internal/pkg/filestorage"
	"github.com/rbvitales/yearbook-api/internal/pkg/helpers"
	"github.com/rbvitales/yearbook-api/internal/pkg/logger"
)

// AlbumService handles album browsing and staff album management
type AlbumService interface {
	List(ctx context.Context, query string, page int) ([]models.Album, dto.PaginationInfo, error)
	AdminList(ctx context.Context, page int) ([]models.Album, dto.PaginationInfo, error)
	GetWithPhotos(ctx context.Context, id int64, page int, includeInactive bool) (*dto.AlbumDetailResponse, error)
	Create(ctx context.Context, req dto.CreateAlbumRequest, cover *multipart.FileHeader) (*models.Album, error)
	Update(ctx context.Context, id int64, req dto.UpdateAlbumRequest, cover *multipart.FileHeader) (*models.Album, error)
	Delete(ctx context.Context, id int64) error
}

type albumService struct {
	albums  AlbumStore
	photos  PhotoStore
	storage filestorage.FileStorage
}

// NewAlbumService creates a new AlbumService
func NewAlbumService(albums AlbumStore, photos PhotoStore, storage filestorage.FileStorage) AlbumService {
	return &albumService{
		albums:  albums,
		photos:  photos,
		storage: storage,
	}
}

// List runs the public album listing over active albums, newest first. An
// optional query narrows by title, description, department or year.
func (s *albumService) List(ctx context.Context, query string, page int) ([]models.Album, dto.PaginationInfo, error) {
	predicate := search.UnifiedAlbumPredicate(query)

	albums, totalItems, err := s.albums.List(ctx, predicate, true, page, helpers.DirectoryPageSize)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return albums, helpers.NewPaginationInfo(totalItems, page, helpers.DirectoryPageSize), nil
}

// AdminList lists every album regardless of visibility
func (s *albumService) AdminList(ctx context.Context, page int) ([]models.Album, dto.PaginationInfo, error) {
	albums, totalItems, err := s.albums.List(ctx, nil, false, page, helpers.AdminPageSize)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return albums, helpers.NewPaginationInfo(totalItems, page, helpers.AdminPageSize), nil
}

// GetWithPhotos returns an album with one page of its photos. Non-staff
// callers only see active albums.
func (s *albumService) GetWithPhotos(ctx context.Context, id int64, page int, includeInactive bool) (*dto.AlbumDetailResponse, error) {
	album, err := s.albums.GetByID(ctx, id, !includeInactive)
	if err != nil {
		return nil, err
	}

	photos, totalItems, err := s.photos.ListByAlbum(ctx, id, page, helpers.DirectoryPageSize)
	if err != nil {
		return nil, err
	}

	return &dto.AlbumDetailResponse{
		Album:      *album,
		Photos:     photos,
		Pagination: helpers.NewPaginationInfo(totalItems, page, helpers.DirectoryPageSize),
	}, nil
}

// Create adds an album. Department and year must form an unused pair.
func (s *albumService) Create(ctx context.Context, req dto.CreateAlbumRequest, cover *multipart.FileHeader) (*models.Album, error) {
	dept, ok := models.ParseDepartment(strings.TrimSpace(req.Department))
	if !ok {
		return nil, apperrors.NewBadRequestError("invalid department: " + req.Department)
	}
	year, ok := models.ParseYear(strings.TrimSpace(req.Year))
	if !ok {
		return nil, apperrors.NewBadRequestError("invalid year: " + req.Year)
	}

	album := &models.Album{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Department:  dept,
		Year:        year,
		IsActive:    true,
	}

	if cover != nil {
		fileRef, err := s.storage.SaveFile(cover, filestorage.AlbumCoverDir)
		if err != nil {
			return nil, err
		}
		album.CoverPhoto = &fileRef
	}

	if err := s.albums.Create(ctx, album); err != nil {
		if album.CoverPhoto != nil {
			if delErr := s.storage.DeleteFile(*album.CoverPhoto); delErr != nil {
				logger.Warn().Err(delErr).Msg("Could not delete orphaned album cover")
			}
		}
		return nil, err
	}

	return album, nil
}

// Update edits an album's fields and optionally replaces its cover photo
func (s *albumService) Update(ctx context.Context, id int64, req dto.UpdateAlbumRequest, cover *multipart.FileHeader) (*models.Album, error) {
	album, err := s.albums.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	dept, ok := models.ParseDepartment(strings.TrimSpace(req.Department))
	if !ok {
		return nil, apperrors.NewBadRequestError("invalid department: " + req.Department)
	}
	year, ok := models.ParseYear(strings.TrimSpace(req.Year))
	if !ok {
		return nil, apperrors.NewBadRequestError("invalid year: " + req.Year)
	}

	album.Title = strings.TrimSpace(req.Title)
	album.Description = strings.TrimSpace(req.Description)
	album.Department = dept
	album.Year = year
	if req.IsActive != nil {
		album.IsActive = *req.IsActive
	}

	if cover != nil {
		fileRef, err := s.storage.SaveFile(cover, filestorage.AlbumCoverDir)
		if err != nil {
			return nil, err
		}
		if album.CoverPhoto != nil {
			if err := s.storage.DeleteFile(*album.CoverPhoto); err != nil {
				logger.Warn().Err(err).Int64("albumID", id).Msg("Could not delete previous album cover")
			}
		}
		album.CoverPhoto = &fileRef
	}

	if err := s.albums.Update(ctx, album); err != nil {
		return nil, err
	}

	return album, nil
}

// Delete removes an album, its photo rows (by cascade) and their stored files
func (s *albumService) Delete(ctx context.Context, id int64) error {
	album, err := s.albums.GetByID(ctx, id, false)
	if err != nil {
		return err
	}

	imageRefs, err := s.photos.ImageRefsByAlbum(ctx, id)
	if err != nil {
		return err
	}

	if err := s.albums.Delete(ctx, id); err != nil {
		return err
	}

	if album.CoverPhoto != nil {
		if err := s.storage.DeleteFile(*album.CoverPhoto); err != nil {
			logger.Warn().Err(err).Int64("albumID", id).Msg("Could not delete album cover file")
		}
	}
	for _, ref := range imageRefs {
		if err := s.storage.DeleteFile(ref); err != nil {
			logger.Warn().Err(err).Str("image", ref).Msg("Could not delete photo file")
		}
	}

	return nil
}
