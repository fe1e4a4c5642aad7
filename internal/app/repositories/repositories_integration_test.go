//go:build integration

package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/apperrors"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/testutil/testdb"
)

var handle *testdb.Handle

func TestMain(m *testing.M) {
	var err error
	handle, err = testdb.Start(context.Background())
	if err != nil {
		panic(err)
	}
	code := m.Run()
	handle.Close()
	os.Exit(code)
}

func fresh(t *testing.T) *Repositories {
	t.Helper()
	require.NoError(t, handle.Truncate(context.Background()))
	return NewRepositories(handle.DB)
}

func account(id, email string) *models.Account {
	dept := "CSE"
	return &models.Account{ID: id, Name: "Name " + id, Email: email, PasswordHash: "hash", Dept: &dept}
}

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestAccountCreateAndGet(t *testing.T) {
	repos := fresh(t)
	ctx := context.Background()

	require.NoError(t, repos.StudentRepository.Create(ctx, account("S1", "s1@example.edu")))

	got, err := repos.StudentRepository.GetByID(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, got.Role)
	assert.Equal(t, "CSE", got.DeptOrEmpty())
	assert.Nil(t, got.Phone)

	_, err = repos.StudentRepository.GetByID(ctx, "s1")
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)

	_, err = repos.TeacherRepository.GetByID(ctx, "S1")
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)

	exists, err := repos.StudentRepository.Exists(ctx, "S1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAccountUniqueConstraints(t *testing.T) {
	repos := fresh(t)
	ctx := context.Background()
	require.NoError(t, repos.TeacherRepository.Create(ctx, account("T1", "t1@example.edu")))

	err := repos.TeacherRepository.Create(ctx, account("T1", "other@example.edu"))
	assert.ErrorIs(t, err, apperrors.ErrIdentifierExists)

	err = repos.TeacherRepository.Create(ctx, account("T2", "t1@example.edu"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	// the student table is a separate namespace
	assert.NoError(t, repos.StudentRepository.Create(ctx, account("T1", "t1@example.edu")))
}

func TestAchievementQueries(t *testing.T) {
	repos := fresh(t)
	ctx := context.Background()
	require.NoError(t, repos.TeacherRepository.Create(ctx, account("T1", "t1@example.edu")))
	require.NoError(t, repos.TeacherRepository.Create(ctx, account("T2", "t2@example.edu")))
	require.NoError(t, repos.StudentRepository.Create(ctx, account("S1", "s1@example.edu")))
	require.NoError(t, repos.StudentRepository.Create(ctx, account("S2", "s2@example.edu")))

	teamSize := 3
	for _, a := range []*models.Achievement{
		{StudentID: "S1", TeacherID: "T1", Type: "competition", EventName: "A", AchievementDate: date("2024-03-14"), Organizer: "o", Position: "1", TeamSize: &teamSize},
		{StudentID: "S1", TeacherID: "T1", Type: "project", EventName: "B", AchievementDate: date("2024-01-01"), Organizer: "o", Position: "2"},
		{StudentID: "S2", TeacherID: "T1", Type: "publication", EventName: "C", AchievementDate: date("2024-03-08"), Organizer: "o", Position: "3"},
		{StudentID: "S2", TeacherID: "T2", Type: "other", EventName: "D", AchievementDate: date("2024-03-10"), Organizer: "o", Position: "4"},
	} {
		require.NoError(t, repos.AchievementRepository.Create(ctx, a))
		assert.NotZero(t, a.ID)
		assert.False(t, a.CreatedAt.IsZero())
	}

	repo := repos.AchievementRepository

	total, err := repo.CountByTeacher(ctx, "T1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	students, err := repo.CountStudentsByTeacher(ctx, "T1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), students)

	week, err := repo.CountByTeacherBetween(ctx, "T1", date("2024-03-08"), date("2024-03-15"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), week)

	list, err := repo.ListByTeacher(ctx, "T1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"A", "C", "B"}, []string{list[0].EventName, list[1].EventName, list[2].EventName})
	assert.Equal(t, "Name S1", list[0].StudentName)
	require.NotNil(t, list[0].TeamSize)
	assert.Equal(t, 3, *list[0].TeamSize)

	recent, err := repo.RecentByTeacher(ctx, "T1", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "C", recent[0].EventName)
	assert.Equal(t, "B", recent[1].EventName)
}

func TestAchievementRequiresExistingStudent(t *testing.T) {
	repos := fresh(t)
	ctx := context.Background()
	require.NoError(t, repos.TeacherRepository.Create(ctx, account("T1", "t1@example.edu")))

	err := repos.AchievementRepository.Create(ctx, &models.Achievement{
		StudentID: "ghost", TeacherID: "T1", Type: "other", EventName: "E",
		AchievementDate: date("2024-01-01"), Organizer: "o", Position: "p",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	n, err := repos.AchievementRepository.CountByTeacher(ctx, "T1")
	require.NoError(t, err)
	assert.Zero(t, n)
}
