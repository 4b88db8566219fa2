package dto

import "github.com/rbvitales/yearbook-api/internal/app/models"

// DashboardResponse aggregates the admin dashboard statistics
type DashboardResponse struct {
	TotalStudents  int64            `json:"totalStudents"`
	TotalAccounts  int64            `json:"totalAccounts"`
	TotalAlbums    int64            `json:"totalAlbums"`
	TotalPhotos    int64            `json:"totalPhotos"`
	TotalSearches  int64            `json:"totalSearches"`
	RecentStudents []models.Student `json:"recentStudents"`
	RecentAlbums   []models.Album   `json:"recentAlbums"`
}
