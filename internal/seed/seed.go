package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/rbvitales/yearbook-api/internal/app/models"
	appRepos "github.com/rbvitales/yearbook-api/internal/app/repositories"
	"github.com/rbvitales/yearbook-api/internal/pkg/auth"
)

// Default staff credentials created on first startup. The password should be
// changed immediately in any real deployment.
const (
	defaultStaffSchoolID = "STAFF-001"
	defaultStaffEmail    = "admin@school.edu.ph"
	defaultStaffPassword = "Admin123!"
)

// CreateDefaultData creates the default staff account if it doesn't exist
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	accountRepo := appRepos.NewAccountRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default staff account...")

	exists, err := accountRepo.SchoolIDExists(ctx, defaultStaffSchoolID)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if staff account exists")
		return err
	}
	if exists {
		lgr.Info().Msg("Staff account already exists, skipping creation")
		return nil
	}

	hashedPassword, err := auth.HashPassword(defaultStaffPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing staff password")
		return err
	}

	staff := &appModels.Account{
		SchoolID:  defaultStaffSchoolID,
		Email:     defaultStaffEmail,
		Password:  hashedPassword,
		FirstName: "System",
		LastName:  "Administrator",
		RoleType:  appModels.RoleStaff,
	}

	if err := accountRepo.Create(ctx, staff); err != nil {
		lgr.Error().Err(err).Msg("Error creating staff account")
		return errors.Join(errors.New("failed to create default staff account"), err)
	}

	lgr.Info().Int64("accountID", staff.ID).Msg("Default staff account created successfully")
	return nil
}
