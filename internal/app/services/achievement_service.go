package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models/dto"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/apperrors"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/export"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/filestorage"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/helpers"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/metrics"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/observability"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/validation"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// Messages shown on the submission page
const (
	MsgStudentNotFound   = "Student ID does not exist in the system."
	MsgInvalidFileType   = "Invalid file type. Please upload PDF, PNG, JPG, or JPEG files."
	MsgInvalidTeamSize   = "Team size must be a whole number."
	MsgDateRequired      = "Achievement date is required."
	MsgInvalidDateFormat = "Invalid date format. Please use YYYY-MM-DD."
)

// Dashboard parameters
const (
	RecentAchievementsLimit = 5
	ThisWeekDays            = 7
)

// AchievementRepository is the achievement storage used by AchievementService
type AchievementRepository interface {
	Create(ctx context.Context, a *models.Achievement) error
	ListByTeacher(ctx context.Context, teacherID string) ([]*models.Achievement, error)
	RecentByTeacher(ctx context.Context, teacherID string, limit int) ([]*models.Achievement, error)
	CountByTeacher(ctx context.Context, teacherID string) (int64, error)
	CountStudentsByTeacher(ctx context.Context, teacherID string) (int64, error)
	CountByTeacherBetween(ctx context.Context, teacherID string, from, to time.Time) (int64, error)
}

// StudentLookup resolves a student by identifier
type StudentLookup interface {
	GetByID(ctx context.Context, id string) (*models.Account, error)
}

// AchievementService handles achievement submission and teacher views
type AchievementService struct {
	achievements AchievementRepository
	students     StudentLookup
	storage      filestorage.FileStorage
	logger       zerolog.Logger
	now          func() time.Time
}

// NewAchievementService creates a new AchievementService
func NewAchievementService(
	achievements AchievementRepository,
	students StudentLookup,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *AchievementService {
	return &AchievementService{
		achievements: achievements,
		students:     students,
		storage:      storage,
		logger:       logger,
		now:          time.Now,
	}
}

// Submit validates req and records it for teacherID. The certificate is only
// written once every check has passed, and is removed again if the insert fails.
func (s *AchievementService) Submit(ctx context.Context, teacherID string, req *dto.AchievementRequest) (*models.Achievement, error) {
	student, err := s.students.GetByID(ctx, req.StudentID)
	if errors.Is(err, apperrors.ErrAccountNotFound) {
		return nil, s.reject(apperrors.ErrStudentNotFound, MsgStudentNotFound)
	}
	if err != nil {
		metrics.AchievementSubmissions.WithLabelValues(metrics.OutcomeError).Inc()
		s.logger.Error().Err(err).Str("student_id", req.StudentID).Msg("Student lookup failed")
		observability.CaptureErr(err)
		return nil, fmt.Errorf("%w: %w", apperrors.ErrDatabase, err)
	}

	cert := req.Certificate
	if cert != nil && cert.Filename == "" {
		cert = nil
	}
	if cert != nil && !filestorage.IsAllowedExtension(cert.Filename) {
		metrics.CertificateUploads.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, s.reject(apperrors.ErrInvalidFileType, MsgInvalidFileType)
	}

	teamSize, err := parseTeamSize(req.TeamSize)
	if err != nil {
		return nil, s.reject(fmt.Errorf("%w: %w", apperrors.ErrInvalidTeamSize, err), MsgInvalidTeamSize)
	}

	if req.Date == "" {
		return nil, s.reject(apperrors.ErrDateRequired, MsgDateRequired)
	}
	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, s.reject(fmt.Errorf("%w: %w", apperrors.ErrInvalidDateFormat, err), MsgInvalidDateFormat)
	}

	if fields, err := validation.Struct(req); err != nil {
		return nil, s.reject(
			fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, strings.Join(fields, ", ")),
			MsgRequiredFields)
	}

	achievement := &models.Achievement{
		StudentID:           student.ID,
		TeacherID:           teacherID,
		Type:                req.Type,
		EventName:           req.EventName,
		AchievementDate:     date,
		Organizer:           req.Organizer,
		Position:            req.Position,
		Description:         req.Description,
		SymposiumTheme:      req.SymposiumTheme,
		ProgrammingLanguage: req.ProgrammingLanguage,
		CodingPlatform:      req.CodingPlatform,
		PaperTitle:          req.PaperTitle,
		JournalName:         req.JournalName,
		ConferenceLevel:     req.ConferenceLevel,
		ConferenceRole:      req.ConferenceRole,
		TeamSize:            teamSize,
		ProjectTitle:        req.ProjectTitle,
		DatabaseType:        req.DatabaseType,
		DifficultyLevel:     req.DifficultyLevel,
		OtherDescription:    req.OtherDescription,
		StudentName:         student.Name,
	}

	if cert != nil {
		path, err := s.storage.SaveCertificate(cert, s.now())
		if err != nil {
			metrics.CertificateUploads.WithLabelValues(metrics.OutcomeError).Inc()
			metrics.AchievementSubmissions.WithLabelValues(metrics.OutcomeError).Inc()
			observability.CaptureErr(err)
			return nil, fmt.Errorf("%w: %w", apperrors.ErrCertificateNotSaved, err)
		}
		metrics.CertificateUploads.WithLabelValues(metrics.OutcomeSuccess).Inc()
		achievement.CertificatePath = &path
	}

	if err := s.achievements.Create(ctx, achievement); err != nil {
		if achievement.CertificatePath != nil {
			if delErr := s.storage.DeleteFile(*achievement.CertificatePath); delErr != nil {
				s.logger.Error().Err(delErr).Str("path", *achievement.CertificatePath).Msg("Failed to remove orphaned certificate")
			}
		}
		metrics.AchievementSubmissions.WithLabelValues(metrics.OutcomeError).Inc()
		s.logger.Error().Err(err).
			Str("teacher_id", teacherID).
			Str("student_id", student.ID).
			Msg("Achievement insert failed")
		observability.CaptureErr(err)
		return nil, fmt.Errorf("%w: %w", apperrors.ErrDatabase, err)
	}

	metrics.AchievementSubmissions.WithLabelValues(metrics.OutcomeSuccess).Inc()
	s.logger.Info().
		Int64("achievement_id", achievement.ID).
		Str("teacher_id", teacherID).
		Str("student_id", student.ID).
		Msg("Achievement recorded")
	return achievement, nil
}

// Dashboard computes the teacher dashboard aggregates
func (s *AchievementService) Dashboard(ctx context.Context, teacherID string) (*models.TeacherStats, error) {
	stats := &models.TeacherStats{}
	var err error

	if stats.TotalAchievements, err = s.achievements.CountByTeacher(ctx, teacherID); err != nil {
		return nil, s.readFailed(err, teacherID)
	}
	if stats.StudentsManaged, err = s.achievements.CountStudentsByTeacher(ctx, teacherID); err != nil {
		return nil, s.readFailed(err, teacherID)
	}

	from, to := helpers.TrailingWindow(s.now(), ThisWeekDays)
	if stats.ThisWeek, err = s.achievements.CountByTeacherBetween(ctx, teacherID, from, to); err != nil {
		return nil, s.readFailed(err, teacherID)
	}

	if stats.Recent, err = s.achievements.RecentByTeacher(ctx, teacherID, RecentAchievementsLimit); err != nil {
		return nil, s.readFailed(err, teacherID)
	}

	return stats, nil
}

// ListForTeacher returns every achievement recorded by teacherID
func (s *AchievementService) ListForTeacher(ctx context.Context, teacherID string) ([]*models.Achievement, error) {
	achievements, err := s.achievements.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, s.readFailed(err, teacherID)
	}
	return achievements, nil
}

// Export builds a spreadsheet of the teacher's listing and its download name.
// The caller closes the returned workbook.
func (s *AchievementService) Export(ctx context.Context, teacherID string) (*excelize.File, string, error) {
	achievements, err := s.ListForTeacher(ctx, teacherID)
	if err != nil {
		return nil, "", err
	}

	f, err := export.AchievementsWorkbook(achievements)
	if err != nil {
		s.logger.Error().Err(err).Str("teacher_id", teacherID).Msg("Failed to build achievements workbook")
		observability.CaptureErr(err)
		return nil, "", fmt.Errorf("error building workbook: %w", err)
	}

	return f, export.AchievementsFilename(teacherID, s.now()), nil
}

func (s *AchievementService) reject(err error, msg string) error {
	metrics.AchievementSubmissions.WithLabelValues(metrics.OutcomeRejected).Inc()
	s.logger.Info().Err(err).Msg("Achievement submission rejected")
	return apperrors.NewUserError(err, msg)
}

func (s *AchievementService) readFailed(err error, teacherID string) error {
	s.logger.Error().Err(err).Str("teacher_id", teacherID).Msg("Failed to read achievements")
	observability.CaptureErr(err)
	return fmt.Errorf("%w: %w", apperrors.ErrDatabase, err)
}

// parseTeamSize returns nil for a blank value
func parseTeamSize(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
