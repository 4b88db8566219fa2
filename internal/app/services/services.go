// Package services holds the application's business logic. Services consume
// the persistence layer through the store interfaces below (satisfied by the
// concrete repositories) and are themselves exposed to the controllers as
// interfaces.
package services

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/rbvitales/yearbook-api/internal/app/models"
)

// AccountStore is the account persistence consumed by services
type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	GetBySchoolID(ctx context.Context, schoolID string) (*models.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	SchoolIDExists(ctx context.Context, schoolID string) (bool, error)
	UpdateProfile(ctx context.Context, account *models.Account) error
	CountAll(ctx context.Context) (int64, error)
}

// TokenStore is the refresh token persistence consumed by services
type TokenStore interface {
	CreateToken(ctx context.Context, token string, accountID int64, expiresAt time.Time) error
	GetTokenAccount(ctx context.Context, token string) (int64, error)
	RevokeToken(ctx context.Context, token string) error
}

// StudentStore is the student persistence consumed by services
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByAccountID(ctx context.Context, accountID int64) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
	PrefixAchievements(ctx context.Context, ids []int64, prefix string) (int64, error)
	Directory(ctx context.Context, predicate squirrel.Sqlizer, page, pageSize int) ([]models.Student, int64, error)
	Search(ctx context.Context, predicate squirrel.Sqlizer, limit int) ([]models.Student, error)
	GetRecent(ctx context.Context, limit int) ([]models.Student, error)
	CountAll(ctx context.Context) (int64, error)
}

// AlbumStore is the album persistence consumed by services
type AlbumStore interface {
	Create(ctx context.Context, album *models.Album) error
	GetByID(ctx context.Context, id int64, onlyActive bool) (*models.Album, error)
	Update(ctx context.Context, album *models.Album) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, predicate squirrel.Sqlizer, onlyActive bool, page, pageSize int) ([]models.Album, int64, error)
	Search(ctx context.Context, predicate squirrel.Sqlizer) ([]models.Album, error)
	GetRecent(ctx context.Context, limit int) ([]models.Album, error)
	CountAll(ctx context.Context) (int64, error)
}

// PhotoStore is the photo persistence consumed by services
type PhotoStore interface {
	Create(ctx context.Context, photo *models.Photo) error
	GetByID(ctx context.Context, id int64) (*models.Photo, error)
	ListByAlbum(ctx context.Context, albumID int64, page, pageSize int) ([]models.Photo, int64, error)
	ImageRefsByAlbum(ctx context.Context, albumID int64) ([]string, error)
	Delete(ctx context.Context, id int64) error
	CountAll(ctx context.Context) (int64, error)
}

// SearchHistoryStore is the search history persistence consumed by services
type SearchHistoryStore interface {
	Create(ctx context.Context, history *models.SearchHistory) error
	Recent(ctx context.Context, accountID int64, limit int) ([]models.SearchHistory, error)
	CountAll(ctx context.Context) (int64, error)
}
