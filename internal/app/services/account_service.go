package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models/dto"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/apperrors"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/auth"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/metrics"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/observability"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// Messages shown on the login and registration pages
const (
	MsgInvalidCredentials = "Invalid credentials. Please try again."
	MsgEmptyPassword      = "Password cannot be empty. Please try again."
	MsgAccountNotCreated  = "Unable to create account. Please try again."
	MsgRequiredFields     = "Please fill in all required fields."
)

// AccountRepository is the storage the account service needs for one role
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
}

// AccountService handles registration and login for students and teachers
type AccountService struct {
	repos  map[models.Role]AccountRepository
	logger zerolog.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(students, teachers AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{
		repos: map[models.Role]AccountRepository{
			models.RoleStudent: students,
			models.RoleTeacher: teachers,
		},
		logger: logger,
	}
}

func (s *AccountService) repo(role models.Role) (AccountRepository, error) {
	repo, ok := s.repos[role]
	if !ok || repo == nil {
		return nil, fmt.Errorf("no account repository for role %q", role)
	}
	return repo, nil
}

// Register creates an account for role. The password is hashed before
// anything else is checked.
func (s *AccountService) Register(ctx context.Context, role models.Role, req *dto.RegisterRequest) (*models.Account, error) {
	repo, err := s.repo(role)
	if err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		metrics.Registrations.WithLabelValues(role.String(), metrics.OutcomeRejected).Inc()
		if errors.Is(err, auth.ErrEmptyPassword) {
			return nil, apperrors.NewUserError(err, MsgEmptyPassword)
		}
		s.logger.Error().Err(err).Str("role", role.String()).Msg("Password hashing failed during registration")
		return nil, apperrors.NewUserError(fmt.Errorf("%w: %w", apperrors.ErrPasswordHashing, err), MsgAccountNotCreated)
	}

	if fields, err := validation.Struct(req); err != nil {
		metrics.Registrations.WithLabelValues(role.String(), metrics.OutcomeRejected).Inc()
		s.logger.Info().Str("role", role.String()).Strs("fields", fields).Msg("Registration rejected")
		return nil, apperrors.NewUserError(
			fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, strings.Join(fields, ", ")),
			MsgRequiredFields)
	}

	account := &models.Account{
		Role:         role,
		ID:           req.ID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hashed,
		Gender:       req.Gender,
		Dept:         req.Dept,
	}

	if err := repo.Create(ctx, account); err != nil {
		metrics.Registrations.WithLabelValues(role.String(), metrics.OutcomeError).Inc()
		s.logger.Error().Err(err).Str("role", role.String()).Str("identifier", req.ID).Msg("Account creation failed")
		if !apperrors.Is(err, apperrors.ErrIdentifierExists, apperrors.ErrEmailAlreadyExists) {
			observability.CaptureErr(err)
		}
		return nil, fmt.Errorf("%w: %w", apperrors.ErrDatabase, err)
	}

	metrics.Registrations.WithLabelValues(role.String(), metrics.OutcomeSuccess).Inc()
	s.logger.Info().Str("role", role.String()).Str("identifier", account.ID).Msg("Account registered")
	return account, nil
}

// Authenticate checks identifier and password for role and returns the account.
// Unknown identifiers and wrong passwords produce the same error.
func (s *AccountService) Authenticate(ctx context.Context, role models.Role, req *dto.LoginRequest) (*models.Account, error) {
	repo, err := s.repo(role)
	if err != nil {
		return nil, err
	}

	account, err := repo.GetByID(ctx, req.Identifier)
	switch {
	case errors.Is(err, apperrors.ErrAccountNotFound):
		auth.EqualizeTiming(req.Password)
		return nil, s.rejectLogin(role, req.Identifier)
	case err != nil:
		metrics.LoginAttempts.WithLabelValues(role.String(), metrics.OutcomeError).Inc()
		s.logger.Error().Err(err).Str("role", role.String()).Str("identifier", req.Identifier).Msg("Account lookup failed")
		observability.CaptureErr(err)
		return nil, fmt.Errorf("%w: %w", apperrors.ErrDatabase, err)
	}

	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		return nil, s.rejectLogin(role, req.Identifier)
	}

	metrics.LoginAttempts.WithLabelValues(role.String(), metrics.OutcomeSuccess).Inc()
	s.logger.Info().Str("role", role.String()).Str("identifier", account.ID).Msg("Login succeeded")
	return account, nil
}

func (s *AccountService) rejectLogin(role models.Role, identifier string) error {
	metrics.LoginAttempts.WithLabelValues(role.String(), metrics.OutcomeRejected).Inc()
	s.logger.Warn().Str("role", role.String()).Str("identifier", identifier).Msg("Failed login attempt")
	return apperrors.NewUserError(apperrors.ErrInvalidCredentials, MsgInvalidCredentials)
}
