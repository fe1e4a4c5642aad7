// Package memstore provides in-memory repositories for handler and service tests.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/apperrors"
)

// Accounts stores accounts of a single role keyed by identifier
type Accounts struct {
	mu   sync.Mutex
	role models.Role
	rows map[string]models.Account
}

// NewAccounts creates an empty account store for role
func NewAccounts(role models.Role) *Accounts {
	return &Accounts{role: role, rows: map[string]models.Account{}}
}

// Create inserts account, enforcing identifier and email uniqueness
func (s *Accounts) Create(_ context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[account.ID]; ok {
		return apperrors.ErrIdentifierExists
	}
	for _, row := range s.rows {
		if row.Email == account.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	account.Role = s.role
	s.rows[account.ID] = *account
	return nil
}

// GetByID returns a copy of the account with id
func (s *Accounts) GetByID(_ context.Context, id string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return &row, nil
}

// Exists reports whether id is taken
func (s *Accounts) Exists(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.rows[id]
	return ok, nil
}

// Achievements stores achievements and joins student names from Students
type Achievements struct {
	mu       sync.Mutex
	Students *Accounts
	Now      func() time.Time
	rows     []models.Achievement
	nextID   int64
}

// NewAchievements creates an empty achievement store
func NewAchievements(students *Accounts) *Achievements {
	return &Achievements{Students: students, Now: time.Now}
}

// Create inserts a, assigning id and created_at
func (s *Achievements) Create(ctx context.Context, a *models.Achievement) error {
	if _, err := s.Students.GetByID(ctx, a.StudentID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	a.ID = s.nextID
	a.CreatedAt = s.Now()
	s.rows = append(s.rows, *a)
	return nil
}

// Len returns the number of stored achievements
func (s *Achievements) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func (s *Achievements) byTeacher(ctx context.Context, teacherID string) []*models.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Achievement
	for i := range s.rows {
		if s.rows[i].TeacherID != teacherID {
			continue
		}
		a := s.rows[i]
		if student, err := s.Students.GetByID(ctx, a.StudentID); err == nil {
			a.StudentName = student.Name
		}
		out = append(out, &a)
	}
	return out
}

// ListByTeacher orders by achievement date, newest first
func (s *Achievements) ListByTeacher(ctx context.Context, teacherID string) ([]*models.Achievement, error) {
	out := s.byTeacher(ctx, teacherID)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].AchievementDate.Equal(out[j].AchievementDate) {
			return out[i].AchievementDate.After(out[j].AchievementDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// RecentByTeacher orders by creation time, newest first
func (s *Achievements) RecentByTeacher(ctx context.Context, teacherID string, limit int) ([]*models.Achievement, error) {
	out := s.byTeacher(ctx, teacherID)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// CountByTeacher counts the teacher's achievements
func (s *Achievements) CountByTeacher(ctx context.Context, teacherID string) (int64, error) {
	return int64(len(s.byTeacher(ctx, teacherID))), nil
}

// CountStudentsByTeacher counts distinct students
func (s *Achievements) CountStudentsByTeacher(ctx context.Context, teacherID string) (int64, error) {
	seen := map[string]struct{}{}
	for _, a := range s.byTeacher(ctx, teacherID) {
		seen[a.StudentID] = struct{}{}
	}
	return int64(len(seen)), nil
}

// CountByTeacherBetween counts achievements dated within [from, to]
func (s *Achievements) CountByTeacherBetween(ctx context.Context, teacherID string, from, to time.Time) (int64, error) {
	var n int64
	for _, a := range s.byTeacher(ctx, teacherID) {
		d := a.AchievementDate
		if !d.Before(from) && !d.After(to) {
			n++
		}
	}
	return n, nil
}
