package dto

// RegisterRequest is the signup payload. The school ID doubles as the login
// name; a linked student profile is created with editable defaults.
type RegisterRequest struct {
	FirstName       string `json:"firstName" binding:"required" example:"Maria"`
	MiddleName      string `json:"middleName" example:"Reyes"`
	LastName        string `json:"lastName" binding:"required" example:"Santos"`
	SchoolID        string `json:"schoolId" binding:"required" example:"S100"`
	Email           string `json:"email" binding:"required,email" example:"maria@school.edu.ph"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	SchoolID string `json:"schoolId" binding:"required" example:"S100"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries the refresh token to rotate
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse returns an issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
}

// UpdateProfileRequest is the multipart profile edit form. An optional
// profile_photo file part accompanies it.
type UpdateProfileRequest struct {
	FirstName    string `form:"firstName"`
	MiddleName   string `form:"middleName"`
	LastName     string `form:"lastName"`
	Email        string `form:"email"`
	SchoolID     string `form:"schoolId"`
	Department   string `form:"department"`
	Year         string `form:"year"`
	Block        string `form:"block"`
	Section      string `form:"section"`
	Achievements string `form:"achievements"`
}
