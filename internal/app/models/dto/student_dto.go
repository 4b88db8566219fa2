package dto

// CreateStudentRequest is the staff payload for adding a student record
type CreateStudentRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	MiddleName   string `json:"middleName"`
	LastName     string `json:"lastName" binding:"required"`
	SchoolID     string `json:"schoolId" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Department   string `json:"department" binding:"required"`
	Year         string `json:"year" binding:"required"`
	Block        string `json:"block" binding:"required"`
	Section      string `json:"section" binding:"required"`
	Achievements string `json:"achievements"`
}

// UpdateStudentRequest is the staff payload for editing a student record
type UpdateStudentRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	MiddleName   string `json:"middleName"`
	LastName     string `json:"lastName" binding:"required"`
	SchoolID     string `json:"schoolId" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Department   string `json:"department" binding:"required"`
	Year         string `json:"year" binding:"required"`
	Block        string `json:"block" binding:"required"`
	Section      string `json:"section" binding:"required"`
	Achievements string `json:"achievements"`
}

// Bulk actions over selected students
const (
	BulkActionDelete    = "delete"
	BulkActionHonorRoll = "honor_roll"
)

// BulkStudentRequest applies one action to a set of students
type BulkStudentRequest struct {
	Action     string  `json:"action" binding:"required" example:"delete"`
	StudentIDs []int64 `json:"studentIds" binding:"required"`
}

// BulkStudentResponse reports how many records the action touched
type BulkStudentResponse struct {
	Action   string `json:"action"`
	Affected int64  `json:"affected"`
}

// TypeaheadResult is one compact student match for the typeahead endpoint
type TypeaheadResult struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	SchoolID   string `json:"schoolId"`
	Department string `json:"department"`
	Year       string `json:"year"`
	Section    string `json:"section"`
}

// TypeaheadResponse wraps the capped typeahead matches. No pagination
// metadata: the endpoint never returns more than the cap.
type TypeaheadResponse struct {
	Results []TypeaheadResult `json:"results"`
}
