package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "student_email_key"})

	assert.True(t, IsDuplicateConstraintError(err, "student_email_key"))
	assert.False(t, IsDuplicateConstraintError(err, "student_pkey"))
	assert.False(t, IsDuplicateConstraintError(errors.New("plain"), "student_email_key"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503", ConstraintName: "achievements_student_id_fkey"}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
}
