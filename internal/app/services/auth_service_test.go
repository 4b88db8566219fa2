package services

import (
	"context"
	"testing"
	"time"

	"github.com/rbvitales/yearbook-api/internal/app/models"
	"github.com/rbvitales/yearbook-api/internal/app/models/dto"
	"github.com/rbvitales/yearbook-api/internal/pkg/apperrors"
	"github.com/rbvitales/yearbook-api/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccountStore struct {
	accounts map[int64]*models.Account
	nextID   int64
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{accounts: make(map[int64]*models.Account)}
}

func (f *fakeAccountStore) Create(ctx context.Context, account *models.Account) error {
	for _, a := range f.accounts {
		if a.SchoolID == account.SchoolID {
			return apperrors.ErrSchoolIDAlreadyExists
		}
		if a.Email == account.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	account.ID = f.nextID
	account.CreatedAt = time.Now()
	account.UpdatedAt = time.Now()
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountStore) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	if a, ok := f.accounts[id]; ok {
		return a, nil
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeAccountStore) GetBySchoolID(ctx context.Context, schoolID string) (*models.Account, error) {
	for _, a := range f.accounts {
		if a.SchoolID == schoolID {
			return a, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeAccountStore) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccountStore) SchoolIDExists(ctx context.Context, schoolID string) (bool, error) {
	for _, a := range f.accounts {
		if a.SchoolID == schoolID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccountStore) UpdateProfile(ctx context.Context, account *models.Account) error {
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountStore) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.accounts)), nil
}

type fakeTokenStore struct {
	tokens  map[string]int64
	revoked map[string]bool
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]int64), revoked: make(map[string]bool)}
}

func (f *fakeTokenStore) CreateToken(ctx context.Context, token string, accountID int64, expiresAt time.Time) error {
	f.tokens[token] = accountID
	return nil
}

func (f *fakeTokenStore) GetTokenAccount(ctx context.Context, token string) (int64, error) {
	if f.revoked[token] {
		return 0, apperrors.ErrTokenRevoked
	}
	if accountID, ok := f.tokens[token]; ok {
		return accountID, nil
	}
	return 0, apperrors.ErrTokenNotFound
}

func (f *fakeTokenStore) RevokeToken(ctx context.Context, token string) error {
	if _, ok := f.tokens[token]; !ok {
		return apperrors.ErrTokenNotFound
	}
	f.revoked[token] = true
	return nil
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "yearbook.test",
	})
}

func newAuthFixture() (AuthService, *fakeAccountStore, *fakeTokenStore, *fakeStudentStore) {
	accounts := newFakeAccountStore()
	tokens := newFakeTokenStore()
	students := newFakeStudentStore()
	svc := NewAuthService(accounts, tokens, students, testJWTService(), &fakeStorage{})
	return svc, accounts, tokens, students
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName:       "Maria",
		LastName:        "Santos",
		SchoolID:        "S100",
		Email:           "maria@school.edu.ph",
		Password:        "Password1",
		ConfirmPassword: "Password1",
	}
}

func TestRegisterCreatesAccountAndStudentProfile(t *testing.T) {
	svc, accounts, tokens, students := newAuthFixture()

	resp, account, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, models.RoleStudent, account.RoleType)
	assert.Len(t, accounts.accounts, 1)
	assert.Len(t, tokens.tokens, 1)

	student := students.createdStudent
	require.NotNil(t, student)
	assert.Equal(t, "S100", student.SchoolID)
	assert.Equal(t, models.DepartmentBSIT, student.Department)
	assert.Equal(t, models.Year2025, student.Year)
	assert.Equal(t, "A", student.Block)
	assert.Equal(t, "1", student.Section)
	require.NotNil(t, student.AccountID)
	assert.Equal(t, account.ID, *student.AccountID)
}

func TestRegisterRejectsPasswordMismatch(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	req := registerRequest()
	req.ConfirmPassword = "Different1"

	_, _, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	req := registerRequest()
	req.Password = "short"
	req.ConfirmPassword = "short"

	_, _, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
}

func TestRegisterRejectsDuplicateSchoolID(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, _, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.Email = "other@school.edu.ph"
	_, _, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrSchoolIDAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	_, _, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	resp, account, err := svc.Login(context.Background(), dto.LoginRequest{SchoolID: "S100", Password: "Password1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "S100", account.SchoolID)

	_, _, err = svc.Login(context.Background(), dto.LoginRequest{SchoolID: "S100", Password: "WrongPassword"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), dto.LoginRequest{SchoolID: "NOPE-1", Password: "Password1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials, "unknown school ID is indistinguishable from a bad password")
}

func TestRefreshTokenRotation(t *testing.T) {
	svc, _, tokens, _ := newAuthFixture()
	initial, _, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	rotated, err := svc.RefreshToken(context.Background(), initial.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, initial.RefreshToken, rotated.RefreshToken)
	assert.True(t, tokens.revoked[initial.RefreshToken], "the presented token is revoked")

	// The revoked token cannot be replayed
	_, err = svc.RefreshToken(context.Background(), initial.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	_, err = svc.RefreshToken(context.Background(), "never-issued")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestUpdateProfilePartialEdit(t *testing.T) {
	svc, _, _, students := newAuthFixture()
	_, account, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	updatedAccount, student, err := svc.UpdateProfile(context.Background(), account.ID, dto.UpdateProfileRequest{
		Department:   "STEM",
		Achievements: "Dean's Lister",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Maria", updatedAccount.FirstName, "empty fields keep stored values")
	assert.Equal(t, models.DepartmentSTEM, student.Department)
	assert.Equal(t, "Dean's Lister", student.Achievements)
	assert.Equal(t, models.Year2025, student.Year, "unspecified enum keeps the stored value")
	assert.NotNil(t, students.updatedStudent)
}

func TestUpdateProfileIgnoresUnknownEnum(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	_, account, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, student, err := svc.UpdateProfile(context.Background(), account.ID, dto.UpdateProfileRequest{
		Department: "LAW",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.DepartmentBSIT, student.Department)
}
