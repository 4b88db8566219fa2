package services

import (
	"context"

	"github.com/rbvitales/yearbook-api/internal/app/models/dto"
)

// Number of recent records shown on the admin dashboard.
const dashboardRecentLimit = 5

// DashboardService aggregates the admin dashboard statistics
type DashboardService interface {
	Overview(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	accounts AccountStore
	students StudentStore
	albums   AlbumStore
	photos   PhotoStore
	history  SearchHistoryStore
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(accounts AccountStore, students StudentStore, albums AlbumStore, photos PhotoStore, history SearchHistoryStore) DashboardService {
	return &dashboardService{
		accounts: accounts,
		students: students,
		albums:   albums,
		photos:   photos,
		history:  history,
	}
}

// Overview collects entity totals and the most recent students and albums
func (s *dashboardService) Overview(ctx context.Context) (*dto.DashboardResponse, error) {
	resp := &dto.DashboardResponse{}

	var err error
	if resp.TotalStudents, err = s.students.CountAll(ctx); err != nil {
		return nil, err
	}
	if resp.TotalAccounts, err = s.accounts.CountAll(ctx); err != nil {
		return nil, err
	}
	if resp.TotalAlbums, err = s.albums.CountAll(ctx); err != nil {
		return nil, err
	}
	if resp.TotalPhotos, err = s.photos.CountAll(ctx); err != nil {
		return nil, err
	}
	if resp.TotalSearches, err = s.history.CountAll(ctx); err != nil {
		return nil, err
	}

	if resp.RecentStudents, err = s.students.GetRecent(ctx, dashboardRecentLimit); err != nil {
		return nil, err
	}
	if resp.RecentAlbums, err = s.albums.GetRecent(ctx, dashboardRecentLimit); err != nil {
		return nil, err
	}

	return resp, nil
}
