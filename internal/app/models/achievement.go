package models

import "time"

// Common achievement types offered by the submission form. The column is free-form.
const (
	AchievementTypeCompetition   = "competition"
	AchievementTypePublication   = "publication"
	AchievementTypeProject       = "project"
	AchievementTypeCertification = "certification"
	AchievementTypeSymposium     = "symposium"
	AchievementTypeConference    = "conference"
	AchievementTypeOther         = "other"
)

// Achievement attributes one achievement to one student, recorded by one teacher.
// Category-specific fields are left nil when they do not apply.
type Achievement struct {
	ID              int64     `db:"id"`
	StudentID       string    `db:"student_id"`
	TeacherID       string    `db:"teacher_id"`
	Type            string    `db:"achievement_type"`
	EventName       string    `db:"event_name"`
	AchievementDate time.Time `db:"achievement_date"`
	Organizer       string    `db:"organizer"`
	Position        string    `db:"position"`
	Description     *string   `db:"achievement_description"`
	CertificatePath *string   `db:"certificate_path"`

	SymposiumTheme      *string `db:"symposium_theme"`
	ProgrammingLanguage *string `db:"programming_language"`
	CodingPlatform      *string `db:"coding_platform"`
	PaperTitle          *string `db:"paper_title"`
	JournalName         *string `db:"journal_name"`
	ConferenceLevel     *string `db:"conference_level"`
	ConferenceRole      *string `db:"conference_role"`
	TeamSize            *int    `db:"team_size"`
	ProjectTitle        *string `db:"project_title"`
	DatabaseType        *string `db:"database_type"`
	DifficultyLevel     *string `db:"difficulty_level"`
	OtherDescription    *string `db:"other_description"`

	CreatedAt time.Time `db:"created_at"`

	// StudentName is filled by listing queries joining the student table
	StudentName string `db:"student_name"`
}

// TeacherStats holds the teacher dashboard aggregates
type TeacherStats struct {
	TotalAchievements int64
	StudentsManaged   int64
	ThisWeek          int64
	Recent            []*Achievement
}
