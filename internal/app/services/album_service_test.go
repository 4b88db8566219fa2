package services

import (
	"context"
	"testing"

	"github.com/rbvitales/yearbook-api/internal/app/models"
	"github.com/rbvitales/yearbook-api/internal/app/models/dto"
	"github.com/rbvitales/yearbook-api/internal/pkg/apperrors"
	"github.com/rbvitales/yearbook-api/internal/pkg/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlbumListOnlyActive(t *testing.T) {
	albums := newFakeAlbumStore()
	svc := NewAlbumService(albums, newFakePhotoStore(), &fakeStorage{})

	_, _, err := svc.List(context.Background(), "", 1)
	require.NoError(t, err)
	assert.True(t, albums.lastOnlyActive)
	assert.Equal(t, helpers.DirectoryPageSize, albums.lastPageSize)

	_, _, err = svc.AdminList(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, albums.lastOnlyActive)
	assert.Equal(t, helpers.AdminPageSize, albums.lastPageSize)
}

func TestAlbumCreateValidatesEnums(t *testing.T) {
	svc := NewAlbumService(newFakeAlbumStore(), newFakePhotoStore(), &fakeStorage{})

	_, err := svc.Create(context.Background(), dto.CreateAlbumRequest{
		Title: "Graduates", Department: "LAW", Year: "2024",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.Create(context.Background(), dto.CreateAlbumRequest{
		Title: "Graduates", Department: "BSIT", Year: "1999",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestAlbumCreateDuplicatePair(t *testing.T) {
	albums := newFakeAlbumStore()
	svc := NewAlbumService(albums, newFakePhotoStore(), &fakeStorage{})

	album, err := svc.Create(context.Background(), dto.CreateAlbumRequest{
		Title: "BSIT Graduates", Department: "BSIT", Year: "2024",
	}, nil)
	require.NoError(t, err)
	assert.True(t, album.IsActive, "new albums are visible by default")

	_, err = svc.Create(context.Background(), dto.CreateAlbumRequest{
		Title: "Another BSIT", Department: "BSIT", Year: "2024",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrAlbumAlreadyExists)
}

func TestAlbumUpdateVisibilityToggle(t *testing.T) {
	albums := newFakeAlbumStore()
	svc := NewAlbumService(albums, newFakePhotoStore(), &fakeStorage{})

	album, err := svc.Create(context.Background(), dto.CreateAlbumRequest{
		Title: "STEM Graduates", Department: "STEM", Year: "2023",
	}, nil)
	require.NoError(t, err)

	hidden := false
	updated, err := svc.Update(context.Background(), album.ID, dto.UpdateAlbumRequest{
		Title: "STEM Graduates", Department: "STEM", Year: "2023", IsActive: &hidden,
	}, nil)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	// Without the flag the stored visibility is kept
	updated, err = svc.Update(context.Background(), album.ID, dto.UpdateAlbumRequest{
		Title: "STEM Grads", Department: "STEM", Year: "2023",
	}, nil)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "STEM Grads", updated.Title)
}

func TestAlbumGetWithPhotosUsesDirectoryPageSize(t *testing.T) {
	albums := newFakeAlbumStore()
	albums.albums[1] = &models.Album{ID: 1, Title: "ABM", IsActive: true}
	photos := newFakePhotoStore()
	photos.listPhotos = []models.Photo{{ID: 1, AlbumID: 1}}
	photos.listTotal = 1
	svc := NewAlbumService(albums, photos, &fakeStorage{})

	detail, err := svc.GetWithPhotos(context.Background(), 1, 1, false)
	require.NoError(t, err)
	assert.Equal(t, helpers.DirectoryPageSize, photos.lastPageSize)
	assert.Len(t, detail.Photos, 1)
}

func TestAlbumGetHiddenRequiresStaff(t *testing.T) {
	albums := newFakeAlbumStore()
	albums.albums[1] = &models.Album{ID: 1, Title: "Hidden", IsActive: false}
	svc := NewAlbumService(albums, newFakePhotoStore(), &fakeStorage{})

	_, err := svc.GetWithPhotos(context.Background(), 1, 1, false)
	assert.ErrorIs(t, err, apperrors.ErrAlbumNotFound)

	detail, err := svc.GetWithPhotos(context.Background(), 1, 1, true)
	require.NoError(t, err)
	assert.Equal(t, "Hidden", detail.Album.Title)
}

func TestAlbumDeleteCleansUpFiles(t *testing.T) {
	albums := newFakeAlbumStore()
	cover := "albums/covers/cover.jpg"
	albums.albums[1] = &models.Album{ID: 1, CoverPhoto: &cover, IsActive: true}
	photos := newFakePhotoStore()
	photos.imageRefs = []string{"albums/photos/a.jpg", "albums/photos/b.jpg"}
	storage := &fakeStorage{}
	svc := NewAlbumService(albums, photos, storage)

	require.NoError(t, svc.Delete(context.Background(), 1))

	assert.Contains(t, storage.deleted, cover)
	assert.Contains(t, storage.deleted, "albums/photos/a.jpg")
	assert.Contains(t, storage.deleted, "albums/photos/b.jpg")
	assert.Empty(t, albums.albums)
}
