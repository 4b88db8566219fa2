package models

// RoleType defines the account role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT" // Regular student account
	RoleStaff   RoleType = "STAFF"   // Staff account with admin panel access
)

// SearchType tags a search history row with the kind of search performed
type SearchType string

const (
	SearchTypeStudent SearchType = "student" // Directory search over students
	SearchTypeAll     SearchType = "all"     // Unified search over albums and students
)
