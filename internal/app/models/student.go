package models

import (
	"strings"
	"time"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID           int64      `json:"id" db:"id" example:"1"`                    // Unique identifier for the student record
	AccountID    *int64     `json:"accountId,omitempty" db:"account_id"`       // Owning account (nullable, staff-created records have none)
	FirstName    string     `json:"firstName" db:"first_name"`                 // Student's first name
	MiddleName   string     `json:"middleName" db:"middle_name"`               // Student's middle name (may be empty)
	LastName     string     `json:"lastName" db:"last_name"`                   // Student's last name
	SchoolID     string     `json:"schoolId" db:"school_id" example:"S100"`    // Globally unique school identifier
	Email        string     `json:"email" db:"email"`                          // Student's email address
	Department   Department `json:"department" db:"department" example:"BSIT"` // Department enum
	Year         Year       `json:"year" db:"year" example:"2024"`             // Enrollment year enum
	Block        string     `json:"block" db:"block" example:"A"`              // Block within the section
	Section      string     `json:"section" db:"section" example:"1"`          // Section identifier
	ProfilePhoto *string    `json:"profilePhoto,omitempty" db:"profile_photo"` // Stored profile photo reference (nullable)
	Achievements string     `json:"achievements" db:"achievements"`            // Free-text achievements
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`                 // Timestamp when the record was created
}

// FullName returns the trimmed concatenation of first, middle and last names.
func (s *Student) FullName() string {
	name := s.FirstName + " " + s.MiddleName + " " + s.LastName
	return strings.Join(strings.Fields(name), " ")
}
