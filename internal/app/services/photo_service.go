package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/rbvitales/yearbook-api/internal/app/models"
	"github.com/rbvitales/yearbook-api/internal/app/models/dto"
	"github.com/rbvitales/yearbook-api/internal/pkg/apperrors"
	"github.com/rbvitales/yearbook-api/internal/pkg/filestorage"
	"github.com/rbvitales/yearbook-api/internal/pkg/logger"
)

// PhotoService handles photo uploads and removal
type PhotoService interface {
	AddPhotos(ctx context.Context, albumID, uploadedBy int64, req dto.AddPhotosRequest, files []*multipart.FileHeader) (*dto.AddPhotosResponse, error)
	GetByID(ctx context.Context, id int64) (*models.Photo, error)
	Delete(ctx context.Context, id int64) error
}

type photoService struct {
	photos   PhotoStore
	albums   AlbumStore
	students StudentStore
	storage  filestorage.FileStorage
}

// NewPhotoService creates a new PhotoService
func NewPhotoService(photos PhotoStore, albums AlbumStore, students StudentStore, storage filestorage.FileStorage) PhotoService {
	return &photoService{
		photos:   photos,
		albums:   albums,
		students: students,
		storage:  storage,
	}
}

// AddPhotos stores one or more uploaded images as photos in an album. All
// photos in a batch share the same caption, student association and featured
// flag. An unknown student ID is dropped rather than failing the upload.
func (s *photoService) AddPhotos(ctx context.Context, albumID, uploadedBy int64, req dto.AddPhotosRequest, files []*multipart.FileHeader) (*dto.AddPhotosResponse, error) {
	if len(files) == 0 {
		return nil, apperrors.NewBadRequestError("no images uploaded")
	}

	if _, err := s.albums.GetByID(ctx, albumID, false); err != nil {
		return nil, err
	}

	studentID := req.StudentID
	if studentID != nil {
		if _, err := s.students.GetByID(ctx, *studentID); err != nil {
			if !errors.Is(err, apperrors.ErrStudentNotFound) {
				return nil, err
			}
			studentID = nil
		}
	}

	caption := strings.TrimSpace(req.Caption)
	added := 0
	for _, file := range files {
		fileRef, err := s.storage.SaveFile(file, filestorage.AlbumPhotoDir)
		if err != nil {
			logger.Warn().Err(err).Str("filename", file.Filename).Msg("Could not store uploaded photo")
			continue
		}

		photo := &models.Photo{
			AlbumID:    albumID,
			StudentID:  studentID,
			Image:      fileRef,
			Caption:    caption,
			IsFeatured: req.IsFeatured,
			UploadedBy: uploadedBy,
		}
		if err := s.photos.Create(ctx, photo); err != nil {
			if delErr := s.storage.DeleteFile(fileRef); delErr != nil {
				logger.Warn().Err(delErr).Str("image", fileRef).Msg("Could not delete orphaned photo file")
			}
			return nil, err
		}
		added++
	}

	if added == 0 {
		return nil, apperrors.ErrStorageFailure
	}

	return &dto.AddPhotosResponse{Added: added}, nil
}

// GetByID retrieves a photo with its album and student details
func (s *photoService) GetByID(ctx context.Context, id int64) (*models.Photo, error) {
	return s.photos.GetByID(ctx, id)
}

// Delete removes a photo row and its stored image file
func (s *photoService) Delete(ctx context.Context, id int64) error {
	photo, err := s.photos.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.photos.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.storage.DeleteFile(photo.Image); err != nil {
		logger.Warn().Err(err).Int64("photoID", id).Msg("Could not delete photo file")
	}

	return nil
}
