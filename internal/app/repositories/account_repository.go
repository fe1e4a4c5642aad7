package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/db"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/apperrors"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/dberrors"
	"github.com/jackc/pgx/v5"
)

// accountTable describes the per-role table layout. Students and teachers
// keep separate tables with role-prefixed column names.
type accountTable struct {
	name            string
	idColumn        string
	nameColumn      string
	genderColumn    string
	deptColumn      string
	pkeyConstraint  string
	emailConstraint string
}

var accountTables = map[models.Role]accountTable{
	models.RoleStudent: {
		name:            "student",
		idColumn:        "student_id",
		nameColumn:      "student_name",
		genderColumn:    "student_gender",
		deptColumn:      "student_dept",
		pkeyConstraint:  "student_pkey",
		emailConstraint: "student_email_key",
	},
	models.RoleTeacher: {
		name:            "teacher",
		idColumn:        "teacher_id",
		nameColumn:      "teacher_name",
		genderColumn:    "teacher_gender",
		deptColumn:      "teacher_dept",
		pkeyConstraint:  "teacher_pkey",
		emailConstraint: "teacher_email_key",
	},
}

// AccountRepository handles database operations for one role's accounts
type AccountRepository struct {
	db    *db.PostgresDB
	role  models.Role
	table accountTable
}

// NewAccountRepository creates a repository bound to role's table
func NewAccountRepository(database *db.PostgresDB, role models.Role) *AccountRepository {
	table, ok := accountTables[role]
	if !ok {
		panic(fmt.Sprintf("repositories: unknown role %q", role))
	}
	return &AccountRepository{
		db:    database,
		role:  role,
		table: table,
	}
}

// Create inserts a new account inside a transaction
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, email, phone_number, password, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.table.name, r.table.idColumn, r.table.nameColumn, r.table.genderColumn, r.table.deptColumn)

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query,
			account.ID, account.Name, account.Email, account.Phone,
			account.PasswordHash, account.Gender, account.Dept)
		return err
	})

	switch {
	case err == nil:
		account.Role = r.role
		return nil
	case dberrors.IsDuplicateConstraintError(err, r.table.pkeyConstraint):
		return fmt.Errorf("%w: %w", apperrors.ErrIdentifierExists, err)
	case dberrors.IsDuplicateConstraintError(err, r.table.emailConstraint):
		return fmt.Errorf("%w: %w", apperrors.ErrEmailAlreadyExists, err)
	default:
		return fmt.Errorf("error creating %s: %w", r.role, err)
	}
}

// GetByID retrieves an account by its login identifier (exact match)
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, email, phone_number, password, %s, %s
		FROM %s
		WHERE %s = $1`,
		r.table.idColumn, r.table.nameColumn, r.table.genderColumn, r.table.deptColumn,
		r.table.name, r.table.idColumn)

	account := &models.Account{Role: r.role}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Phone,
		&account.PasswordHash,
		&account.Gender,
		&account.Dept,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving %s: %w", r.role, err)
	}

	return account, nil
}

// Exists reports whether an account with id exists
func (r *AccountRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)`, r.table.name, r.table.idColumn)

	var exists bool
	if err := r.db.Pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking %s existence: %w", r.role, err)
	}
	return exists, nil
}
