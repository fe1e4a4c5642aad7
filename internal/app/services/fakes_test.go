package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/apperrors"
	"github.com/stretchr/testify/require"
)

var errConnection = errors.New("connection refused")

type fakeAccountRepo struct {
	mu        sync.Mutex
	accounts  map[string]*models.Account
	createErr error
	getErr    error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*models.Account{}}
}

func (r *fakeAccountRepo) Create(_ context.Context, a *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.accounts[a.ID]; ok {
		return apperrors.ErrIdentifierExists
	}
	for _, existing := range r.accounts {
		if existing.Email == a.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	a, ok := r.accounts[id]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

type fakeAchievementRepo struct {
	mu        sync.Mutex
	rows      []*models.Achievement
	nextID    int64
	clock     time.Time
	createErr error
	readErr   error
}

func (r *fakeAchievementRepo) Create(_ context.Context, a *models.Achievement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	a.ID = r.nextID
	a.CreatedAt = r.clock.Add(time.Duration(r.nextID) * time.Second)
	cp := *a
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeAchievementRepo) byTeacher(teacherID string) []*models.Achievement {
	var out []*models.Achievement
	for _, a := range r.rows {
		if a.TeacherID == teacherID {
			out = append(out, a)
		}
	}
	return out
}

func (r *fakeAchievementRepo) ListByTeacher(_ context.Context, teacherID string) ([]*models.Achievement, error) {
	if r.readErr != nil {
		return nil, r.readErr
	}
	out := r.byTeacher(teacherID)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].AchievementDate.Equal(out[j].AchievementDate) {
			return out[i].AchievementDate.After(out[j].AchievementDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *fakeAchievementRepo) RecentByTeacher(_ context.Context, teacherID string, limit int) ([]*models.Achievement, error) {
	if r.readErr != nil {
		return nil, r.readErr
	}
	out := r.byTeacher(teacherID)
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

func (r *fakeAchievementRepo) CountByTeacher(_ context.Context, teacherID string) (int64, error) {
	if r.readErr != nil {
		return 0, r.readErr
	}
	return int64(len(r.byTeacher(teacherID))), nil
}

func (r *fakeAchievementRepo) CountStudentsByTeacher(_ context.Context, teacherID string) (int64, error) {
	if r.readErr != nil {
		return 0, r.readErr
	}
	seen := map[string]struct{}{}
	for _, a := range r.byTeacher(teacherID) {
		seen[a.StudentID] = struct{}{}
	}
	return int64(len(seen)), nil
}

func (r *fakeAchievementRepo) CountByTeacherBetween(_ context.Context, teacherID string, from, to time.Time) (int64, error) {
	if r.readErr != nil {
		return 0, r.readErr
	}
	var n int64
	for _, a := range r.byTeacher(teacherID) {
		if !a.AchievementDate.Before(from) && !a.AchievementDate.After(to) {
			n++
		}
	}
	return n, nil
}

type fakeStorage struct {
	saved   []string
	deleted []string
	saveErr error
}

func (s *fakeStorage) SaveCertificate(fh *multipart.FileHeader, at time.Time) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	p := "uploads/" + at.Format("20060102150405") + "_" + fh.Filename
	s.saved = append(s.saved, p)
	return p, nil
}

func (s *fakeStorage) DeleteFile(p string) error {
	s.deleted = append(s.deleted, p)
	return nil
}

func (s *fakeStorage) GetFullPath(p string) string { return p }

// fileHeader builds a real multipart.FileHeader by parsing a one-file form
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("certificate", name)
	require.NoError(t, err)
	_, err = io.Copy(part, bytes.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["certificate"][0]
}

func strPtr(s string) *string { return &s }
