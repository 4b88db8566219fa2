package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rbvitales/yearbook-api/internal/app/models"
	"github.com/rbvitales/yearbook-api/internal/pkg/apperrors"
	"github.com/rbvitales/yearbook-api/internal/pkg/dberrors"
	"github.com/rbvitales/yearbook-api/internal/pkg/logger"
)

// AccountRepository handles account database operations
type AccountRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const accountColumns = "id, school_id, email, password, first_name, last_name, role_type, created_at, updated_at"

func scanAccount(row pgx.Row) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID, &account.SchoolID, &account.Email, &account.Password,
		&account.FirstName, &account.LastName, &account.RoleType,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Create creates a new account. Duplicate school IDs and emails surface as
// distinct conflict errors.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (school_id, email, password, first_name, last_name, role_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		account.SchoolID, account.Email, account.Password,
		account.FirstName, account.LastName, account.RoleType,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "accounts_school_id_key") {
			logger.Warn().Str("schoolID", account.SchoolID).Msg("Attempted to create account with duplicate school ID")
			return apperrors.ErrSchoolIDAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "accounts_email_key") {
			logger.Warn().Str("email", account.Email).Msg("Attempted to create account with duplicate email")
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("schoolID", account.SchoolID).Msg("Error executing create account query")
		return fmt.Errorf("error creating account: %w", err)
	}

	return nil
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	query := fmt.Sprintf("SELECT %s FROM accounts WHERE id = $1", accountColumns)

	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}

	return account, nil
}

// GetBySchoolID retrieves an account by its school ID (the login name)
func (r *AccountRepository) GetBySchoolID(ctx context.Context, schoolID string) (*models.Account, error) {
	query := fmt.Sprintf("SELECT %s FROM accounts WHERE school_id = $1", accountColumns)

	account, err := scanAccount(r.db.QueryRow(ctx, query, schoolID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}

	return account, nil
}

// EmailExists checks if an email is already registered
func (r *AccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// SchoolIDExists checks if a school ID is already registered
func (r *AccountRepository) SchoolIDExists(ctx context.Context, schoolID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM accounts WHERE school_id = $1)`, schoolID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking school ID existence: %w", err)
	}
	return exists, nil
}

// UpdateProfile updates the mutable account fields
func (r *AccountRepository) UpdateProfile(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts
		SET email = $1, first_name = $2, last_name = $3, updated_at = NOW()
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		account.Email, account.FirstName, account.LastName, account.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "accounts_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating account: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}

// CountAll returns the total number of accounts
func (r *AccountRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting accounts: %w", err)
	}
	return count, nil
}
