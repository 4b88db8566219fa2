package dto

import "github.com/rbvitales/yearbook-api/internal/app/models"

// CreateAlbumRequest is the multipart album creation form. An optional
// cover_photo file part accompanies it.
type CreateAlbumRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Department  string `form:"department" binding:"required"`
	Year        string `form:"year" binding:"required"`
}

// UpdateAlbumRequest is the multipart album edit form
type UpdateAlbumRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Department  string `form:"department" binding:"required"`
	Year        string `form:"year" binding:"required"`
	IsActive    *bool  `form:"isActive"`
}

// AlbumDetailResponse pairs an album with one page of its photos
type AlbumDetailResponse struct {
	Album      models.Album   `json:"album"`
	Photos     []models.Photo `json:"photos"`
	Pagination PaginationInfo `json:"pagination"`
}
