package export

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Achievements"

var achievementHeader = []string{
	"ID", "Student ID", "Student Name", "Type", "Event", "Date", "Organizer", "Position",
	"Description", "Certificate", "Symposium Theme", "Programming Language", "Coding Platform",
	"Paper Title", "Journal", "Conference Level", "Conference Role", "Team Size",
	"Project Title", "Database Type", "Difficulty", "Other", "Recorded At",
}

// AchievementsWorkbook builds a single-sheet workbook listing achievements
// with a bold, filterable header row.
func AchievementsWorkbook(achievements []*models.Achievement) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for col, h := range achievementHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellStr(sheetName, cell, h); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("set cell %s: %w", cell, err)
		}
	}

	for r, a := range achievements {
		for c, val := range achievementRow(a) {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("row %d cell: %w", r+2, err)
			}
			if err := f.SetCellStr(sheetName, cell, val); err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	last, err := excelize.ColumnNumberToName(len(achievementHeader))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("last column: %w", err)
	}
	if bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetCellStyle(sheetName, "A1", last+"1", bold)
	}
	_ = f.AutoFilter(sheetName, "A1:"+last+"1", nil)

	for c, h := range achievementHeader {
		width := float64(len(h)) * 1.2
		for _, a := range achievements {
			if l := float64(len(achievementRow(a)[c])); l > width {
				width = l
			}
		}
		if width < 10 {
			width = 10
		}
		if width > 50 {
			width = 50
		}
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("column %d: %w", c+1, err)
		}
		_ = f.SetColWidth(sheetName, col, col, width)
	}

	return f, nil
}

// AchievementsFilename returns the download name for a teacher's export
func AchievementsFilename(teacherID string, at time.Time) string {
	return fmt.Sprintf("achievements_%s_%s.xlsx", sanitizeFileName(teacherID), at.Format("20060102"))
}

func achievementRow(a *models.Achievement) []string {
	teamSize := ""
	if a.TeamSize != nil {
		teamSize = strconv.Itoa(*a.TeamSize)
	}
	return []string{
		strconv.FormatInt(a.ID, 10),
		a.StudentID,
		a.StudentName,
		a.Type,
		a.EventName,
		a.AchievementDate.Format("2006-01-02"),
		a.Organizer,
		a.Position,
		deref(a.Description),
		deref(a.CertificatePath),
		deref(a.SymposiumTheme),
		deref(a.ProgrammingLanguage),
		deref(a.CodingPlatform),
		deref(a.PaperTitle),
		deref(a.JournalName),
		deref(a.ConferenceLevel),
		deref(a.ConferenceRole),
		teamSize,
		deref(a.ProjectTitle),
		deref(a.DatabaseType),
		deref(a.DifficultyLevel),
		deref(a.OtherDescription),
		a.CreatedAt.Format(time.RFC3339),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var invalidFileRe = regexp.MustCompile(`[\\/:*?"<>|\s]+`)

func sanitizeFileName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "teacher"
	}
	return invalidFileRe.ReplaceAllString(s, "_")
}
