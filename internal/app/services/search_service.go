package services

import (
	"context"
	"strings"

	"github.com/rbvitales/yearbook-api/internal/app/models"
	"github.com/rbvitales/yearbook-api/internal/app/models/dto"
	"github.com/rbvitales/yearbook-api/internal/app/search"
	"github.com/rbvitales/yearbook-api/internal/pkg/logger"
)

// Default number of rows returned by the recent searches endpoint.
const defaultRecentSearches = 5

// SearchService handles the unified album/student search and search history
type SearchService interface {
	SearchAll(ctx context.Context, accountID int64, query string) (*dto.UnifiedSearchResponse, error)
	RecentSearches(ctx context.Context, accountID int64, limit int) ([]models.SearchHistory, error)
}

type searchService struct {
	albums   AlbumStore
	students StudentStore
	history  SearchHistoryStore
}

// NewSearchService creates a new SearchService
func NewSearchService(albums AlbumStore, students StudentStore, history SearchHistoryStore) SearchService {
	return &searchService{
		albums:   albums,
		students: students,
		history:  history,
	}
}

// SearchAll runs the unified search: albums and students are matched
// independently and returned as two collections. The collections are never
// merged or ranked against each other. An empty query returns two empty
// collections without touching the database.
func (s *searchService) SearchAll(ctx context.Context, accountID int64, query string) (*dto.UnifiedSearchResponse, error) {
	query = strings.TrimSpace(query)

	resp := &dto.UnifiedSearchResponse{
		Query:    query,
		Albums:   []models.Album{},
		Students: []models.Student{},
	}
	if query == "" {
		return resp, nil
	}

	albums, err := s.albums.Search(ctx, search.UnifiedAlbumPredicate(query))
	if err != nil {
		return nil, err
	}

	students, err := s.students.Search(ctx, search.UnifiedStudentPredicate(query), 0)
	if err != nil {
		return nil, err
	}

	resp.Albums = albums
	resp.Students = students

	s.recordSearch(ctx, accountID, query)

	return resp, nil
}

// RecentSearches returns the account's newest history rows, newest first
func (s *searchService) RecentSearches(ctx context.Context, accountID int64, limit int) ([]models.SearchHistory, error) {
	if limit <= 0 {
		limit = defaultRecentSearches
	}
	return s.history.Recent(ctx, accountID, limit)
}

func (s *searchService) recordSearch(ctx context.Context, accountID int64, query string) {
	if accountID <= 0 {
		return
	}

	history := &models.SearchHistory{
		AccountID:   accountID,
		SearchQuery: query,
		SearchType:  models.SearchTypeAll,
	}
	if err := s.history.Create(ctx, history); err != nil {
		logger.Warn().Err(err).Int64("accountID", accountID).Msg("Could not record search history")
	}
}
