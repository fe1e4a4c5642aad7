package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/db"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/apperrors"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/dberrors"
	"github.com/jackc/pgx/v5"
)

const achievementColumns = `
	a.id, a.student_id, a.teacher_id, a.achievement_type, a.event_name, a.achievement_date,
	a.organizer, a.position, a.achievement_description, a.certificate_path,
	a.symposium_theme, a.programming_language, a.coding_platform, a.paper_title,
	a.journal_name, a.conference_level, a.conference_role, a.team_size,
	a.project_title, a.database_type, a.difficulty_level, a.other_description,
	a.created_at, s.student_name`

// AchievementRepository handles database operations for achievements
type AchievementRepository struct {
	db *db.PostgresDB
}

// NewAchievementRepository creates a new achievement repository
func NewAchievementRepository(database *db.PostgresDB) *AchievementRepository {
	return &AchievementRepository{
		db: database,
	}
}

// Create inserts an achievement and fills in its id and created_at
func (r *AchievementRepository) Create(ctx context.Context, a *models.Achievement) error {
	query := `
		INSERT INTO achievements (
			student_id, teacher_id, achievement_type, event_name, achievement_date,
			organizer, position, achievement_description, certificate_path,
			symposium_theme, programming_language, coding_platform, paper_title,
			journal_name, conference_level, conference_role, team_size,
			project_title, database_type, difficulty_level, other_description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id, created_at`

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return tx.QueryRow(ctx, query,
			a.StudentID, a.TeacherID, a.Type, a.EventName, a.AchievementDate,
			a.Organizer, a.Position, a.Description, a.CertificatePath,
			a.SymposiumTheme, a.ProgrammingLanguage, a.CodingPlatform, a.PaperTitle,
			a.JournalName, a.ConferenceLevel, a.ConferenceRole, a.TeamSize,
			a.ProjectTitle, a.DatabaseType, a.DifficultyLevel, a.OtherDescription,
		).Scan(&a.ID, &a.CreatedAt)
	})
	if err != nil {
		// student or teacher row vanished between lookup and insert
		if dberrors.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %w", apperrors.ErrStudentNotFound, err)
		}
		return fmt.Errorf("error creating achievement: %w", err)
	}

	return nil
}

// ListByTeacher returns every achievement recorded by teacherID, newest date first
func (r *AchievementRepository) ListByTeacher(ctx context.Context, teacherID string) ([]*models.Achievement, error) {
	query := `SELECT ` + achievementColumns + `
		FROM achievements a
		JOIN student s ON s.student_id = a.student_id
		WHERE a.teacher_id = $1
		ORDER BY a.achievement_date DESC, a.id DESC`

	return r.query(ctx, query, teacherID)
}

// RecentByTeacher returns the limit most recently recorded achievements
func (r *AchievementRepository) RecentByTeacher(ctx context.Context, teacherID string, limit int) ([]*models.Achievement, error) {
	query := `SELECT ` + achievementColumns + `
		FROM achievements a
		JOIN student s ON s.student_id = a.student_id
		WHERE a.teacher_id = $1
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $2`

	return r.query(ctx, query, teacherID, limit)
}

// CountByTeacher returns how many achievements teacherID has recorded
func (r *AchievementRepository) CountByTeacher(ctx context.Context, teacherID string) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM achievements WHERE teacher_id = $1`, teacherID)
}

// CountStudentsByTeacher returns the number of distinct students teacherID has recorded achievements for
func (r *AchievementRepository) CountStudentsByTeacher(ctx context.Context, teacherID string) (int64, error) {
	return r.count(ctx, `SELECT COUNT(DISTINCT student_id) FROM achievements WHERE teacher_id = $1`, teacherID)
}

// CountByTeacherBetween counts achievements dated within [from, to], both inclusive
func (r *AchievementRepository) CountByTeacherBetween(ctx context.Context, teacherID string, from, to time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM achievements
		WHERE teacher_id = $1 AND achievement_date BETWEEN $2::date AND $3::date`

	return r.count(ctx, query, teacherID, from, to)
}

func (r *AchievementRepository) count(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var n int64
	if err := r.db.Pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting achievements: %w", err)
	}
	return n, nil
}

func (r *AchievementRepository) query(ctx context.Context, query string, args ...interface{}) ([]*models.Achievement, error) {
	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying achievements: %w", err)
	}
	defer rows.Close()

	achievements := []*models.Achievement{}
	for rows.Next() {
		var a models.Achievement
		if err := rows.Scan(
			&a.ID, &a.StudentID, &a.TeacherID, &a.Type, &a.EventName, &a.AchievementDate,
			&a.Organizer, &a.Position, &a.Description, &a.CertificatePath,
			&a.SymposiumTheme, &a.ProgrammingLanguage, &a.CodingPlatform, &a.PaperTitle,
			&a.JournalName, &a.ConferenceLevel, &a.ConferenceRole, &a.TeamSize,
			&a.ProjectTitle, &a.DatabaseType, &a.DifficultyLevel, &a.OtherDescription,
			&a.CreatedAt, &a.StudentName,
		); err != nil {
			return nil, fmt.Errorf("error scanning achievement: %w", err)
		}
		achievements = append(achievements, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating achievements: %w", err)
	}

	return achievements, nil
}
