package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/rbvitales/yearbook-api/internal/app/models"
	"github.com/rbvitales/yearbook-api/internal/app/models/dto"
	"github.com/rbvitales/yearbook-api/internal/pkg/apperrors"
	"github.com/rbvitales/yearbook-api/internal/pkg/auth"
	"github.com/rbvitales/yearbook-api/internal/pkg/filestorage"
	"github.com/rbvitales/yearbook-api/internal/pkg/logger"
	"github.com/rbvitales/yearbook-api/internal/pkg/validation"
)

// Defaults applied to the student profile created at signup. The owner can
// change them afterwards through the profile endpoint.
const (
	defaultDepartment = models.DepartmentBSIT
	defaultYear       = models.Year2025
	defaultBlock      = "A"
	defaultSection    = "1"
)

// AuthService handles registration, login, token rotation and profile management
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, *models.Account, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, *models.Account, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	GetProfile(ctx context.Context, accountID int64) (*models.Account, *models.Student, error)
	UpdateProfile(ctx context.Context, accountID int64, req dto.UpdateProfileRequest, photo *multipart.FileHeader) (*models.Account, *models.Student, error)
}

type authService struct {
	accounts   AccountStore
	tokens     TokenStore
	students   StudentStore
	jwtService *auth.JWTService
	storage    filestorage.FileStorage
}

// NewAuthService creates a new AuthService
func NewAuthService(accounts AccountStore, tokens TokenStore, students StudentStore, jwtService *auth.JWTService, storage filestorage.FileStorage) AuthService {
	return &authService{
		accounts:   accounts,
		tokens:     tokens,
		students:   students,
		jwtService: jwtService,
		storage:    storage,
	}
}

// Register creates an account plus its linked student profile and issues an
// initial token pair.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, *models.Account, error) {
	if req.Password != req.ConfirmPassword {
		return nil, nil, apperrors.NewBadRequestError("passwords do not match")
	}
	if !validation.IsValidPassword(req.Password) {
		return nil, nil, apperrors.ErrInvalidPassword
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, nil, apperrors.ErrInvalidEmail
	}
	if !validation.IsValidSchoolID(req.SchoolID) {
		return nil, nil, apperrors.NewBadRequestError("invalid school ID format")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		SchoolID:  strings.TrimSpace(req.SchoolID),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  hashedPassword,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		RoleType:  models.RoleStudent,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, nil, err
	}

	student := &models.Student{
		AccountID:  &account.ID,
		FirstName:  account.FirstName,
		MiddleName: strings.TrimSpace(req.MiddleName),
		LastName:   account.LastName,
		SchoolID:   account.SchoolID,
		Email:      account.Email,
		Department: defaultDepartment,
		Year:       defaultYear,
		Block:      defaultBlock,
		Section:    defaultSection,
	}

	if err := s.students.Create(ctx, student); err != nil {
		// A staff-created record may already carry this school ID. The
		// account stands on its own; the profile can be linked manually.
		logger.Warn().Err(err).Str("schoolID", account.SchoolID).Msg("Could not create student profile at signup")
	}

	tokens, err := s.issueTokens(ctx, account)
	if err != nil {
		return nil, nil, err
	}

	return tokens, account, nil
}

// Login authenticates by school ID and password
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, *models.Account, error) {
	account, err := s.accounts.GetBySchoolID(ctx, strings.TrimSpace(req.SchoolID))
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !auth.CheckPassword(account.Password, req.Password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, account)
	if err != nil {
		return nil, nil, err
	}

	return tokens, account, nil
}

// RefreshToken rotates a refresh token: the presented token is revoked and a
// fresh pair is issued for its account.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	accountID, err := s.tokens.GetTokenAccount(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, account)
}

// GetProfile returns the account and its linked student profile. The student
// is nil when no profile row is linked to the account.
func (s *authService) GetProfile(ctx context.Context, accountID int64) (*models.Account, *models.Student, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}

	student, err := s.students.GetByAccountID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, nil, err
		}
		student = nil
	}

	return account, student, nil
}

// UpdateProfile applies partial edits to the account and its student profile.
// Empty form fields keep the stored value. A missing student profile is
// created on first edit with the signup defaults.
func (s *authService) UpdateProfile(ctx context.Context, accountID int64, req dto.UpdateProfileRequest, photo *multipart.FileHeader) (*models.Account, *models.Student, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}

	if v := strings.TrimSpace(req.FirstName); v != "" {
		account.FirstName = v
	}
	if v := strings.TrimSpace(req.LastName); v != "" {
		account.LastName = v
	}
	if v := strings.ToLower(strings.TrimSpace(req.Email)); v != "" && v != account.Email {
		if !validation.IsValidEmail(v) {
			return nil, nil, apperrors.ErrInvalidEmail
		}
		account.Email = v
	}

	if err := s.accounts.UpdateProfile(ctx, account); err != nil {
		return nil, nil, err
	}

	student, err := s.students.GetByAccountID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, nil, err
		}
		student = &models.Student{
			AccountID:  &account.ID,
			SchoolID:   account.SchoolID,
			Department: defaultDepartment,
			Year:       defaultYear,
			Block:      defaultBlock,
			Section:    defaultSection,
		}
	}

	student.FirstName = account.FirstName
	student.LastName = account.LastName
	student.Email = account.Email
	if v := strings.TrimSpace(req.MiddleName); v != "" {
		student.MiddleName = v
	}
	if d, ok := models.ParseDepartment(strings.TrimSpace(req.Department)); ok {
		student.Department = d
	}
	if y, ok := models.ParseYear(strings.TrimSpace(req.Year)); ok {
		student.Year = y
	}
	if v := strings.TrimSpace(req.Block); v != "" {
		student.Block = v
	}
	if v := strings.TrimSpace(req.Section); v != "" {
		student.Section = v
	}
	if v := strings.TrimSpace(req.Achievements); v != "" {
		student.Achievements = v
	}

	if photo != nil {
		fileRef, err := s.storage.SaveFile(photo, filestorage.ProfilePhotoDir)
		if err != nil {
			return nil, nil, err
		}
		if student.ProfilePhoto != nil {
			if err := s.storage.DeleteFile(*student.ProfilePhoto); err != nil {
				logger.Warn().Err(err).Int64("accountID", accountID).Msg("Could not delete previous profile photo")
			}
		}
		student.ProfilePhoto = &fileRef
	}

	if student.ID == 0 {
		err = s.students.Create(ctx, student)
	} else {
		err = s.students.Update(ctx, student)
	}
	if err != nil {
		return nil, nil, err
	}

	return account, student, nil
}

func (s *authService) issueTokens(ctx context.Context, account *models.Account) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(account)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	if err := s.tokens.CreateToken(ctx, refreshToken, account.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}
