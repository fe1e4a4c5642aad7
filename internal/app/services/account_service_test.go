package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models/dto"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/apperrors"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountService() (*AccountService, *fakeAccountRepo, *fakeAccountRepo) {
	students, teachers := newFakeAccountRepo(), newFakeAccountRepo()
	return NewAccountService(students, teachers, zerolog.Nop()), students, teachers
}

func validRegistration() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		ID:       "S1",
		Name:     "Asha",
		Email:    "asha@example.edu",
		Password: "hunter2",
		Dept:     strPtr("CSE"),
	}
}

func TestRegisterThenAuthenticate(t *testing.T) {
	svc, students, _ := newAccountService()
	ctx := context.Background()

	account, err := svc.Register(ctx, models.RoleStudent, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, account.Role)
	assert.NotEqual(t, "hunter2", students.accounts["S1"].PasswordHash)
	assert.True(t, auth.CheckPassword(students.accounts["S1"].PasswordHash, "hunter2"))
	assert.Nil(t, students.accounts["S1"].Phone)

	got, err := svc.Authenticate(ctx, models.RoleStudent, &dto.LoginRequest{Identifier: "S1", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name)
	assert.Equal(t, "CSE", got.DeptOrEmpty())
}

func TestRegisterEmptyPassword(t *testing.T) {
	svc, students, _ := newAccountService()
	req := validRegistration()
	req.Password = ""

	_, err := svc.Register(context.Background(), models.RoleStudent, req)
	require.Error(t, err)
	msg, ok := apperrors.UserMessage(err)
	require.True(t, ok)
	assert.Equal(t, MsgEmptyPassword, msg)
	assert.Empty(t, students.accounts)
}

func TestRegisterMissingRequiredFields(t *testing.T) {
	svc, _, teachers := newAccountService()

	for name, mutate := range map[string]func(*dto.RegisterRequest){
		"no id":       func(r *dto.RegisterRequest) { r.ID = "" },
		"no name":     func(r *dto.RegisterRequest) { r.Name = "" },
		"no email":    func(r *dto.RegisterRequest) { r.Email = "" },
		"id too long": func(r *dto.RegisterRequest) { r.ID = strings.Repeat("x", 51) },
	} {
		t.Run(name, func(t *testing.T) {
			req := validRegistration()
			mutate(req)

			_, err := svc.Register(context.Background(), models.RoleTeacher, req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			msg, _ := apperrors.UserMessage(err)
			assert.Equal(t, MsgRequiredFields, msg)
		})
	}
	assert.Empty(t, teachers.accounts)
}

func TestRegisterDuplicateIsDatabaseError(t *testing.T) {
	svc, _, _ := newAccountService()
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RoleStudent, validRegistration())
	require.NoError(t, err)

	_, err = svc.Register(ctx, models.RoleStudent, validRegistration())
	assert.ErrorIs(t, err, apperrors.ErrDatabase)
	assert.ErrorIs(t, err, apperrors.ErrIdentifierExists)
	_, ok := apperrors.UserMessage(err)
	assert.False(t, ok)
}

func TestRolesHaveSeparateNamespaces(t *testing.T) {
	svc, _, _ := newAccountService()
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RoleStudent, validRegistration())
	require.NoError(t, err)
	_, err = svc.Register(ctx, models.RoleTeacher, validRegistration())
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, models.RoleTeacher, &dto.LoginRequest{Identifier: "S1", Password: "hunter2"})
	assert.NoError(t, err)
}

func TestAuthenticateFailuresLookAlike(t *testing.T) {
	svc, _, _ := newAccountService()
	ctx := context.Background()
	_, err := svc.Register(ctx, models.RoleTeacher, validRegistration())
	require.NoError(t, err)

	_, wrongPw := svc.Authenticate(ctx, models.RoleTeacher, &dto.LoginRequest{Identifier: "S1", Password: "nope"})
	_, unknown := svc.Authenticate(ctx, models.RoleTeacher, &dto.LoginRequest{Identifier: "ghost", Password: "nope"})

	for _, err := range []error{wrongPw, unknown} {
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		msg, ok := apperrors.UserMessage(err)
		assert.True(t, ok)
		assert.Equal(t, MsgInvalidCredentials, msg)
	}
}

func TestAuthenticateLookupFailure(t *testing.T) {
	svc, students, _ := newAccountService()
	students.getErr = fmt.Errorf("query: %w", errConnection)

	_, err := svc.Authenticate(context.Background(), models.RoleStudent, &dto.LoginRequest{Identifier: "S1", Password: "x"})
	assert.ErrorIs(t, err, apperrors.ErrDatabase)
	_, ok := apperrors.UserMessage(err)
	assert.False(t, ok)
}
