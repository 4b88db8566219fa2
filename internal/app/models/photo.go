package models

import "time"

// Photo defines the photo model based on the 'photos' table.
// A photo belongs to exactly one album and is cascade-deleted with it; the
// student association is optional and nulled out when the student is deleted.
type Photo struct {
	ID         int64     `json:"id" db:"id" example:"1"`                 // Unique identifier for the photo
	AlbumID    int64     `json:"albumId" db:"album_id"`                  // Owning album
	StudentID  *int64    `json:"studentId,omitempty" db:"student_id"`    // Associated student (nullable)
	Image      string    `json:"image" db:"image"`                       // Stored image reference
	Caption    string    `json:"caption" db:"caption"`                   // Photo caption (may be empty)
	IsFeatured bool      `json:"isFeatured" db:"is_featured"`            // Featured photos sort before the rest
	UploadedBy int64     `json:"uploadedBy" db:"uploaded_by"`            // Account that uploaded the photo
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`              // Timestamp when the photo was uploaded

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"` // Associated student details
	Album   *Album   `json:"album,omitempty"`   // Owning album details
}
