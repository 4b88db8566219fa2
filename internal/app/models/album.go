package models

import "time"

// Album defines the album model based on the 'albums' table.
// At most one album exists per (department, year) pair; list views hide
// albums with IsActive=false instead of deleting them.
type Album struct {
	ID          int64      `json:"id" db:"id" example:"1"`                  // Unique identifier for the album
	Title       string     `json:"title" db:"title"`                        // Album title
	Description string     `json:"description" db:"description"`            // Free-text description
	Department  Department `json:"department" db:"department"`              // Department enum
	Year        Year       `json:"year" db:"year"`                          // Enrollment year enum
	CoverPhoto  *string    `json:"coverPhoto,omitempty" db:"cover_photo"`   // Stored cover photo reference (nullable)
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`  // Visibility flag, false hides the album from listings
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`               // Timestamp when the album was created
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`               // Timestamp when the album was last updated
	PhotoCount  int        `json:"photoCount" db:"photo_count" example:"8"` // Derived number of photos in the album
}
