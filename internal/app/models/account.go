package models

import "time"

// Account defines the account model based on the 'accounts' table
type Account struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the account
	SchoolID  string    `json:"schoolId" db:"school_id" example:"S100"`                   // School ID used as the login name
	Email     string    `json:"email" db:"email" example:"maria@school.edu.ph"`           // Account email address
	Password  string    `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	FirstName string    `json:"firstName" db:"first_name" example:"Maria"`                // Account holder's first name
	LastName  string    `json:"lastName" db:"last_name" example:"Santos"`                 // Account holder's last name
	RoleType  RoleType  `json:"roleType" db:"role_type" example:"STUDENT"`                // Account role (STUDENT or STAFF)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the account was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the account was last updated
}

// IsStaff reports whether the account has staff privileges.
func (a *Account) IsStaff() bool {
	return a.RoleType == RoleStaff
}
