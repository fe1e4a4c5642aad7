package seed

import (
	"context"
	"errors"
	"fmt"

	appModels "github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/apperrors"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// AccountStore is the teacher account storage the seed writes to
type AccountStore interface {
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, account *appModels.Account) error
}

// DemoTeacher describes the optional teacher account created at startup
type DemoTeacher struct {
	ID       string
	Name     string
	Email    string
	Password string
	Dept     string
}

// CreateDefaultData creates the demo teacher unless it already exists.
// Running it again is a no-op.
func CreateDefaultData(ctx context.Context, teachers AccountStore, teacher DemoTeacher, lgr zerolog.Logger) error {
	if teacher.ID == "" || teacher.Password == "" {
		return fmt.Errorf("%w: demo teacher needs an id and a password", apperrors.ErrValidationFailed)
	}

	exists, err := teachers.Exists(ctx, teacher.ID)
	if err != nil {
		return fmt.Errorf("error checking demo teacher: %w", err)
	}
	if exists {
		lgr.Info().Str("teacher_id", teacher.ID).Msg("Demo teacher already present")
		return nil
	}

	hashed, err := auth.HashPassword(teacher.Password)
	if err != nil {
		return fmt.Errorf("error hashing demo teacher password: %w", err)
	}

	account := &appModels.Account{
		Role:         appModels.RoleTeacher,
		ID:           teacher.ID,
		Name:         teacher.Name,
		Email:        teacher.Email,
		PasswordHash: hashed,
	}
	if teacher.Dept != "" {
		account.Dept = &teacher.Dept
	}

	err = teachers.Create(ctx, account)
	if errors.Is(err, apperrors.ErrIdentifierExists) {
		return nil
	}
	if err != nil {
		lgr.Error().Err(err).Str("teacher_id", teacher.ID).Msg("Error creating demo teacher")
		return err
	}

	lgr.Info().Str("teacher_id", teacher.ID).Msg("Demo teacher created")
	return nil
}
