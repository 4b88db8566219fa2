package services

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/rbvitales/yearbook-api/internal/app/models"
	"github.com/rbvitales/yearbook-api/internal/app/models/dto"
	"github.com/rbvitales/yearbook-api/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadFiles(names ...string) []*multipart.FileHeader {
	files := make([]*multipart.FileHeader, 0, len(names))
	for _, name := range names {
		files = append(files, &multipart.FileHeader{Filename: name})
	}
	return files
}

func newPhotoFixture() (PhotoService, *fakePhotoStore, *fakeAlbumStore, *fakeStudentStore, *fakeStorage) {
	photos := newFakePhotoStore()
	albums := newFakeAlbumStore()
	albums.albums[1] = &models.Album{ID: 1, Title: "BSIT 2024", IsActive: true}
	students := newFakeStudentStore()
	storage := &fakeStorage{}
	svc := NewPhotoService(photos, albums, students, storage)
	return svc, photos, albums, students, storage
}

func TestAddPhotosBatch(t *testing.T) {
	svc, photos, _, _, storage := newPhotoFixture()

	result, err := svc.AddPhotos(context.Background(), 1, 42, dto.AddPhotosRequest{
		Caption:    "Graduation day",
		IsFeatured: true,
	}, uploadFiles("a.jpg", "b.jpg"))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Added)
	assert.Len(t, photos.photos, 2)
	assert.Len(t, storage.saved, 2)
	for _, p := range photos.photos {
		assert.Equal(t, "Graduation day", p.Caption)
		assert.True(t, p.IsFeatured)
		assert.Equal(t, int64(42), p.UploadedBy)
		assert.Nil(t, p.StudentID)
	}
}

func TestAddPhotosRequiresFiles(t *testing.T) {
	svc, _, _, _, _ := newPhotoFixture()

	_, err := svc.AddPhotos(context.Background(), 1, 42, dto.AddPhotosRequest{}, nil)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestAddPhotosUnknownAlbum(t *testing.T) {
	svc, _, _, _, _ := newPhotoFixture()

	_, err := svc.AddPhotos(context.Background(), 99, 42, dto.AddPhotosRequest{}, uploadFiles("a.jpg"))
	assert.ErrorIs(t, err, apperrors.ErrAlbumNotFound)
}

func TestAddPhotosDropsUnknownStudent(t *testing.T) {
	svc, photos, _, _, _ := newPhotoFixture()

	missing := int64(404)
	_, err := svc.AddPhotos(context.Background(), 1, 42, dto.AddPhotosRequest{
		StudentID: &missing,
	}, uploadFiles("a.jpg"))
	require.NoError(t, err, "an unknown student association never fails the upload")

	for _, p := range photos.photos {
		assert.Nil(t, p.StudentID)
	}
}

func TestAddPhotosKeepsKnownStudent(t *testing.T) {
	svc, photos, _, students, _ := newPhotoFixture()
	students.students[7] = &models.Student{ID: 7, FirstName: "Maria"}

	known := int64(7)
	_, err := svc.AddPhotos(context.Background(), 1, 42, dto.AddPhotosRequest{
		StudentID: &known,
	}, uploadFiles("a.jpg"))
	require.NoError(t, err)

	for _, p := range photos.photos {
		require.NotNil(t, p.StudentID)
		assert.Equal(t, int64(7), *p.StudentID)
	}
}

func TestDeletePhotoRemovesFile(t *testing.T) {
	svc, photos, _, _, storage := newPhotoFixture()
	photos.photos[5] = &models.Photo{ID: 5, AlbumID: 1, Image: "albums/photos/x.jpg"}

	require.NoError(t, svc.Delete(context.Background(), 5))

	assert.Empty(t, photos.photos)
	assert.Equal(t, []string{"albums/photos/x.jpg"}, storage.deleted)
}

func TestDeletePhotoNotFound(t *testing.T) {
	svc, _, _, _, _ := newPhotoFixture()
	assert.ErrorIs(t, svc.Delete(context.Background(), 99), apperrors.ErrPhotoNotFound)
}
