package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/rbvitales/yearbook-api/internal/app/models"
	"github.com/rbvitales/yearbook-api/internal/pkg/apperrors"
)

// In-memory store fakes for service tests.

type fakeStudentStore struct {
	students map[int64]*models.Student

	directoryStudents []models.Student
	directoryTotal    int64
	directoryErr      error
	directoryCalls    int
	lastPredicate     squirrel.Sqlizer
	lastPage          int
	lastPageSize      int

	searchStudents []models.Student
	searchErr      error
	searchCalls    int
	lastLimit      int

	deletedIDs     []int64
	prefixedIDs    []int64
	appliedPrefix  string
	createdStudent *models.Student
	updatedStudent *models.Student
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student)}
}

func (f *fakeStudentStore) Create(ctx context.Context, student *models.Student) error {
	student.ID = int64(len(f.students) + 1)
	student.CreatedAt = time.Now()
	f.students[student.ID] = student
	f.createdStudent = student
	return nil
}

func (f *fakeStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if s, ok := f.students[id]; ok {
		return s, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) GetByAccountID(ctx context.Context, accountID int64) (*models.Student, error) {
	for _, s := range f.students {
		if s.AccountID != nil && *s.AccountID == accountID {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) Update(ctx context.Context, student *models.Student) error {
	f.students[student.ID] = student
	f.updatedStudent = student
	return nil
}

func (f *fakeStudentStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeStudentStore) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	f.deletedIDs = append(f.deletedIDs, ids...)
	return int64(len(ids)), nil
}

func (f *fakeStudentStore) PrefixAchievements(ctx context.Context, ids []int64, prefix string) (int64, error) {
	f.prefixedIDs = append(f.prefixedIDs, ids...)
	f.appliedPrefix = prefix
	return int64(len(ids)), nil
}

func (f *fakeStudentStore) Directory(ctx context.Context, predicate squirrel.Sqlizer, page, pageSize int) ([]models.Student, int64, error) {
	f.directoryCalls++
	f.lastPredicate = predicate
	f.lastPage = page
	f.lastPageSize = pageSize
	return f.directoryStudents, f.directoryTotal, f.directoryErr
}

func (f *fakeStudentStore) Search(ctx context.Context, predicate squirrel.Sqlizer, limit int) ([]models.Student, error) {
	f.searchCalls++
	f.lastPredicate = predicate
	f.lastLimit = limit
	return f.searchStudents, f.searchErr
}

func (f *fakeStudentStore) GetRecent(ctx context.Context, limit int) ([]models.Student, error) {
	return f.directoryStudents, nil
}

func (f *fakeStudentStore) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.students)), nil
}

type fakeHistoryStore struct {
	created   []*models.SearchHistory
	createErr error
	recent    []models.SearchHistory
	lastLimit int
}

func (f *fakeHistoryStore) Create(ctx context.Context, history *models.SearchHistory) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, history)
	return nil
}

func (f *fakeHistoryStore) Recent(ctx context.Context, accountID int64, limit int) ([]models.SearchHistory, error) {
	f.lastLimit = limit
	return f.recent, nil
}

func (f *fakeHistoryStore) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.created)), nil
}

type fakeAlbumStore struct {
	albums map[int64]*models.Album

	listAlbums []models.Album
	listTotal  int64
	listCalls  int

	searchAlbums []models.Album
	searchErr    error
	searchCalls  int

	lastOnlyActive bool
	lastPageSize   int
}

func newFakeAlbumStore() *fakeAlbumStore {
	return &fakeAlbumStore{albums: make(map[int64]*models.Album)}
}

func (f *fakeAlbumStore) Create(ctx context.Context, album *models.Album) error {
	for _, a := range f.albums {
		if a.Department == album.Department && a.Year == album.Year {
			return apperrors.ErrAlbumAlreadyExists
		}
	}
	album.ID = int64(len(f.albums) + 1)
	album.CreatedAt = time.Now()
	f.albums[album.ID] = album
	return nil
}

func (f *fakeAlbumStore) GetByID(ctx context.Context, id int64, onlyActive bool) (*models.Album, error) {
	album, ok := f.albums[id]
	if !ok || (onlyActive && !album.IsActive) {
		return nil, apperrors.ErrAlbumNotFound
	}
	return album, nil
}

func (f *fakeAlbumStore) Update(ctx context.Context, album *models.Album) error {
	f.albums[album.ID] = album
	return nil
}

func (f *fakeAlbumStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.albums[id]; !ok {
		return apperrors.ErrAlbumNotFound
	}
	delete(f.albums, id)
	return nil
}

func (f *fakeAlbumStore) List(ctx context.Context, predicate squirrel.Sqlizer, onlyActive bool, page, pageSize int) ([]models.Album, int64, error) {
	f.listCalls++
	f.lastOnlyActive = onlyActive
	f.lastPageSize = pageSize
	return f.listAlbums, f.listTotal, nil
}

func (f *fakeAlbumStore) Search(ctx context.Context, predicate squirrel.Sqlizer) ([]models.Album, error) {
	f.searchCalls++
	return f.searchAlbums, f.searchErr
}

func (f *fakeAlbumStore) GetRecent(ctx context.Context, limit int) ([]models.Album, error) {
	return f.listAlbums, nil
}

func (f *fakeAlbumStore) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.albums)), nil
}

type fakePhotoStore struct {
	photos map[int64]*models.Photo

	listPhotos   []models.Photo
	listTotal    int64
	lastPageSize int
	imageRefs    []string
	deletedIDs   []int64
}

func newFakePhotoStore() *fakePhotoStore {
	return &fakePhotoStore{photos: make(map[int64]*models.Photo)}
}

func (f *fakePhotoStore) Create(ctx context.Context, photo *models.Photo) error {
	photo.ID = int64(len(f.photos) + 1)
	photo.CreatedAt = time.Now()
	f.photos[photo.ID] = photo
	return nil
}

func (f *fakePhotoStore) GetByID(ctx context.Context, id int64) (*models.Photo, error) {
	if p, ok := f.photos[id]; ok {
		return p, nil
	}
	return nil, apperrors.ErrPhotoNotFound
}

func (f *fakePhotoStore) ListByAlbum(ctx context.Context, albumID int64, page, pageSize int) ([]models.Photo, int64, error) {
	f.lastPageSize = pageSize
	return f.listPhotos, f.listTotal, nil
}

func (f *fakePhotoStore) ImageRefsByAlbum(ctx context.Context, albumID int64) ([]string, error) {
	return f.imageRefs, nil
}

func (f *fakePhotoStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.photos[id]; !ok {
		return apperrors.ErrPhotoNotFound
	}
	delete(f.photos, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakePhotoStore) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.photos)), nil
}

type fakeStorage struct {
	saved   []string
	deleted []string
	saveErr error
}

func (f *fakeStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	ref := subPath + "/" + fileHeader.Filename
	f.saved = append(f.saved, ref)
	return ref, nil
}

func (f *fakeStorage) DeleteFile(fileRef string) error {
	f.deleted = append(f.deleted, fileRef)
	return nil
}

func (f *fakeStorage) ResolveURL(fileRef string) string {
	return "/uploads/" + fileRef
}
