package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AccountRepository       *AccountRepository
	TokenRepository         *TokenRepository
	StudentRepository       *StudentRepository
	AlbumRepository         *AlbumRepository
	PhotoRepository         *PhotoRepository
	SearchHistoryRepository *SearchHistoryRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AccountRepository:       NewAccountRepository(db),
		TokenRepository:         NewTokenRepository(db),
		StudentRepository:       NewStudentRepository(db),
		AlbumRepository:         NewAlbumRepository(db),
		PhotoRepository:         NewPhotoRepository(db),
		SearchHistoryRepository: NewSearchHistoryRepository(db),
	}
}
