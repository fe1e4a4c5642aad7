package export

import (
	"testing"
	"time"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestAchievementsWorkbook(t *testing.T) {
	desc := "Regional round"
	team := 3
	rows := []*models.Achievement{
		{
			ID: 7, StudentID: "S1", StudentName: "Asha", Type: models.AchievementTypeCompetition,
			EventName: "Hackathon", AchievementDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Organizer: "IEEE", Position: "1st", Description: &desc, TeamSize: &team,
			CreatedAt: time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC),
		},
		{ID: 8, StudentID: "S2", StudentName: "Bala", Type: "other", EventName: "Quiz", Organizer: "Club", Position: "2nd"},
	}

	f, err := AchievementsWorkbook(rows)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, achievementHeader, got[0])
	assert.Equal(t, "7", got[1][0])
	assert.Equal(t, "Asha", got[1][2])
	assert.Equal(t, "2024-03-05", got[1][5])
	assert.Equal(t, "Regional round", got[1][8])
	assert.Equal(t, "3", got[1][17])
	assert.Equal(t, "Bala", got[2][2])
}

func TestAchievementsWorkbookEmpty(t *testing.T) {
	f, err := AchievementsWorkbook(nil)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAchievementsWorkbookAddressesEveryColumn(t *testing.T) {
	f, err := AchievementsWorkbook([]*models.Achievement{{ID: 1, StudentName: "Asha", Type: "other"}})
	require.NoError(t, err)
	defer f.Close()

	last, err := excelize.ColumnNumberToName(len(achievementHeader))
	require.NoError(t, err)

	v, err := f.GetCellValue(sheetName, last+"1")
	require.NoError(t, err)
	assert.Equal(t, "Recorded At", v)

	v, err = f.GetCellValue(sheetName, "C2")
	require.NoError(t, err)
	assert.Equal(t, "Asha", v)

	width, err := f.GetColWidth(sheetName, last)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, width, 10.0)
}

func TestAchievementsFilename(t *testing.T) {
	at := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "achievements_T1_20240305.xlsx", AchievementsFilename("T1", at))
	assert.Equal(t, "achievements_a_b_20240305.xlsx", AchievementsFilename("a/b", at))
	assert.Equal(t, "achievements_teacher_20240305.xlsx", AchievementsFilename(" ", at))
}
