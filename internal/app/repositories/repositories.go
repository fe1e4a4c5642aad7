package repositories

import (
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository     *AccountRepository
	TeacherRepository     *AccountRepository
	AchievementRepository *AchievementRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		StudentRepository:     NewAccountRepository(database, models.RoleStudent),
		TeacherRepository:     NewAccountRepository(database, models.RoleTeacher),
		AchievementRepository: NewAchievementRepository(database),
	}
}
