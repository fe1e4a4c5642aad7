package dto

import (
	"mime/multipart"
	"strconv"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
)

// AchievementRequest is the achievement submission form. Optional text fields
// are nil when the input was absent and "" when it was posted empty.
type AchievementRequest struct {
	StudentID   string  `form:"student_id"`
	Type        string  `form:"achievement_type" validate:"required,max=80"`
	EventName   string  `form:"event_name" validate:"required,max=200"`
	Date        string  `form:"achievement_date"`
	Organizer   string  `form:"organizer" validate:"required,max=200"`
	Position    string  `form:"position" validate:"required,max=100"`
	Description *string `form:"achievement_description"`

	SymposiumTheme      *string `form:"symposium_theme" validate:"omitempty,max=200"`
	ProgrammingLanguage *string `form:"programming_language" validate:"omitempty,max=80"`
	CodingPlatform      *string `form:"coding_platform" validate:"omitempty,max=100"`
	PaperTitle          *string `form:"paper_title" validate:"omitempty,max=300"`
	JournalName         *string `form:"journal_name" validate:"omitempty,max=200"`
	ConferenceLevel     *string `form:"conference_level" validate:"omitempty,max=80"`
	ConferenceRole      *string `form:"conference_role" validate:"omitempty,max=80"`
	TeamSize            string  `form:"team_size"`
	ProjectTitle        *string `form:"project_title" validate:"omitempty,max=300"`
	DatabaseType        *string `form:"database_type" validate:"omitempty,max=80"`
	DifficultyLevel     *string `form:"difficulty_level" validate:"omitempty,max=80"`
	OtherDescription    *string `form:"other_description"`

	Certificate *multipart.FileHeader `form:"-" validate:"-"`
}

// AchievementView is an achievement prepared for display
type AchievementView struct {
	ID             int64
	StudentID      string
	StudentName    string
	Type           string
	EventName      string
	Date           string
	Organizer      string
	Position       string
	Description    string
	CertificateURL string
	Details        []Detail
	RecordedAt     string
}

// Detail is one category-specific label/value pair
type Detail struct {
	Label string
	Value string
}

// NewAchievementView converts an achievement for templates. Unset category
// fields are left out of Details.
func NewAchievementView(a *models.Achievement) AchievementView {
	v := AchievementView{
		ID:          a.ID,
		StudentID:   a.StudentID,
		StudentName: a.StudentName,
		Type:        a.Type,
		EventName:   a.EventName,
		Date:        a.AchievementDate.Format("2006-01-02"),
		Organizer:   a.Organizer,
		Position:    a.Position,
		Description: deref(a.Description),
		RecordedAt:  a.CreatedAt.Format("2006-01-02 15:04"),
	}
	if a.CertificatePath != nil && *a.CertificatePath != "" {
		v.CertificateURL = "/static/" + *a.CertificatePath
	}

	add := func(label string, value *string) {
		if value != nil && *value != "" {
			v.Details = append(v.Details, Detail{Label: label, Value: *value})
		}
	}
	add("Symposium theme", a.SymposiumTheme)
	add("Programming language", a.ProgrammingLanguage)
	add("Coding platform", a.CodingPlatform)
	add("Paper title", a.PaperTitle)
	add("Journal", a.JournalName)
	add("Conference level", a.ConferenceLevel)
	add("Conference role", a.ConferenceRole)
	if a.TeamSize != nil {
		v.Details = append(v.Details, Detail{Label: "Team size", Value: strconv.Itoa(*a.TeamSize)})
	}
	add("Project title", a.ProjectTitle)
	add("Database", a.DatabaseType)
	add("Difficulty", a.DifficultyLevel)
	add("Other", a.OtherDescription)

	return v
}

// NewAchievementViews converts a list of achievements
func NewAchievementViews(achievements []*models.Achievement) []AchievementView {
	views := make([]AchievementView, 0, len(achievements))
	for _, a := range achievements {
		views = append(views, NewAchievementView(a))
	}
	return views
}

// TeacherDashboard is the teacher dashboard page model
type TeacherDashboard struct {
	TeacherID         string
	TeacherName       string
	TeacherDept       string
	TotalAchievements int64
	StudentsManaged   int64
	ThisWeek          int64
	Recent            []AchievementView
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
